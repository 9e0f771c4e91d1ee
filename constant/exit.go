package constant

// Process exit statuses, one per failure cause, so scripts can discriminate
// why an invocation failed.
const (
	ExitBadInterface        = 2
	ExitNoInterfaceResolved = 3
	ExitLinuxToggleFailed   = 4
	ExitWindowsToggleFailed = 5
	ExitDarwinToggleFailed  = 6
	ExitUnsupportedPlatform = 7
	ExitEnableModeFailed    = 8
	ExitDisableModeFailed   = 9
	ExitNoInterfaces        = 10
	ExitModeLinuxOnly       = 11
)
