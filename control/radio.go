package control

import (
	"context"

	"github.com/wifimon/wifimon/log"
	"github.com/wifimon/wifimon/stats"

	E "github.com/sagernet/sing/common/exceptions"
)

var (
	ErrUnsupportedPlatform = E.New("unsupported platform")
	ErrNoInterfaceResolved = E.New("could not determine wireless interface for fallback")
)

// ToggleError reports a failed radio power command. Platform discriminates
// the exit status at the CLI layer.
type ToggleError struct {
	Platform string
	Stderr   string
}

func (e *ToggleError) Error() string {
	message := "failed to toggle radio power"
	if e.Stderr != "" {
		message += ": " + e.Stderr
	}
	return message
}

// RadioController turns a wireless radio on or off. Implementations hold no
// state of their own; the radio state lives entirely in the OS.
type RadioController interface {
	SetPower(ctx context.Context, on bool, ifaceHint string) error
}

// NewRadioController selects the implementation for goos once, keeping the
// rest of the program platform-agnostic.
func NewRadioController(goos string, runner Runner, source stats.Source) RadioController {
	switch goos {
	case "linux":
		return &linuxRadio{runner: runner, source: source}
	case "darwin":
		return &darwinRadio{runner: runner}
	case "windows":
		return &windowsRadio{runner: runner}
	default:
		return &unsupportedRadio{goos: goos}
	}
}

type linuxRadio struct {
	runner Runner
	source stats.Source
}

func (c *linuxRadio) SetPower(ctx context.Context, on bool, ifaceHint string) error {
	state := "off"
	if on {
		state = "on"
	}
	result, err := c.runner.Run(ctx, "nmcli", "radio", "wifi", state)
	if err == nil && result.ExitCode == 0 {
		return nil
	}
	iface := ifaceHint
	if iface == "" {
		names, err := c.source.Interfaces()
		if err != nil {
			return E.Cause(err, "resolve fallback interface")
		}
		candidates := stats.DetectWIFILike(names)
		if len(candidates) == 0 {
			return ErrNoInterfaceResolved
		}
		iface = candidates[0]
	}
	action := "down"
	if on {
		action = "up"
	}
	log.Info("nmcli failed, falling back to: sudo ip link set ", iface, " ", action)
	result, err = c.runner.Run(ctx, "sudo", "ip", "link", "set", iface, action)
	if err != nil {
		return &ToggleError{Platform: "linux", Stderr: err.Error()}
	}
	if result.ExitCode != 0 {
		return &ToggleError{Platform: "linux", Stderr: result.Stderr}
	}
	return nil
}

type darwinRadio struct {
	runner Runner
}

func (c *darwinRadio) SetPower(ctx context.Context, on bool, ifaceHint string) error {
	iface := ifaceHint
	if iface == "" {
		iface = "en0"
	}
	state := "off"
	if on {
		state = "on"
	}
	result, err := c.runner.Run(ctx, "/usr/sbin/networksetup", "-setairportpower", iface, state)
	if err != nil {
		return &ToggleError{Platform: "darwin", Stderr: err.Error()}
	}
	if result.ExitCode != 0 {
		return &ToggleError{Platform: "darwin", Stderr: result.Stderr}
	}
	return nil
}

type windowsRadio struct {
	runner Runner
}

func (c *windowsRadio) SetPower(ctx context.Context, on bool, ifaceHint string) error {
	iface := ifaceHint
	if iface == "" {
		iface = "Wi-Fi"
	}
	admin := "admin=disable"
	if on {
		admin = "admin=enable"
	}
	result, err := c.runner.Run(ctx, "netsh", "interface", "set", "interface", iface, admin)
	if err != nil {
		return &ToggleError{Platform: "windows", Stderr: err.Error()}
	}
	if result.ExitCode != 0 {
		return &ToggleError{Platform: "windows", Stderr: result.Stderr}
	}
	return nil
}

type unsupportedRadio struct {
	goos string
}

func (c *unsupportedRadio) SetPower(ctx context.Context, on bool, ifaceHint string) error {
	return E.Cause(ErrUnsupportedPlatform, "radio control on ", c.goos)
}
