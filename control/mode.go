package control

import (
	"context"
	"strings"

	E "github.com/sagernet/sing/common/exceptions"
)

// TransitionError reports the first failed command of a monitor-mode
// transition sequence. Later commands are never attempted.
type TransitionError struct {
	Command string
	Stderr  string
}

func (e *TransitionError) Error() string {
	message := "failed: " + e.Command
	if e.Stderr != "" {
		message += ": " + e.Stderr
	}
	return message
}

// ModeController switches a wireless interface between managed and monitor
// mode by setting the driver type with the link down. Linux only. The
// controller reports command success, not the resulting driver mode; the
// caller should verify with `iw dev <iface> info`.
type ModeController struct {
	Runner Runner
	GOOS   string
}

func (c *ModeController) Set(ctx context.Context, iface string, monitor bool) error {
	if c.GOOS != "linux" {
		return E.Cause(ErrUnsupportedPlatform, "monitor mode on ", c.GOOS)
	}
	mode := "managed"
	if monitor {
		mode = "monitor"
	}
	commands := [][]string{
		{"sudo", "ip", "link", "set", iface, "down"},
		{"sudo", "iw", "dev", iface, "set", "type", mode},
		{"sudo", "ip", "link", "set", iface, "up"},
	}
	for _, command := range commands {
		result, err := c.Runner.Run(ctx, command[0], command[1:]...)
		if err != nil {
			return &TransitionError{Command: strings.Join(command, " "), Stderr: err.Error()}
		}
		if result.ExitCode != 0 {
			return &TransitionError{Command: strings.Join(command, " "), Stderr: result.Stderr}
		}
	}
	return nil
}
