package main

import (
	"context"
	"errors"
	"os"
	"runtime"

	C "github.com/wifimon/wifimon/constant"
	"github.com/wifimon/wifimon/control"
	"github.com/wifimon/wifimon/log"
	"github.com/wifimon/wifimon/stats"

	"github.com/spf13/cobra"
)

var wifiFlagInterface string

var commandWIFI = &cobra.Command{
	Use:       "wifi {on|off}",
	Short:     "Turn the Wi-Fi radio on or off",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	Run: func(cmd *cobra.Command, args []string) {
		setRadioPower(args[0] == "on")
	},
}

func init() {
	commandWIFI.Flags().StringVar(&wifiFlagInterface, "iface", "", "interface hint (macOS/Windows name or Linux device)")
	mainCommand.AddCommand(commandWIFI)
}

func setRadioPower(on bool) {
	controller := control.NewRadioController(runtime.GOOS, newRunner(), stats.NewSource())
	err := controller.SetPower(context.Background(), on, wifiFlagInterface)
	if err == nil {
		state := "off"
		if on {
			state = "on"
		}
		log.Info("Wi-Fi ", state)
		return
	}
	log.Error(err)
	switch {
	case errors.Is(err, control.ErrNoInterfaceResolved):
		os.Exit(C.ExitNoInterfaceResolved)
	case errors.Is(err, control.ErrUnsupportedPlatform):
		os.Exit(C.ExitUnsupportedPlatform)
	}
	var toggleErr *control.ToggleError
	if errors.As(err, &toggleErr) {
		switch toggleErr.Platform {
		case "windows":
			os.Exit(C.ExitWindowsToggleFailed)
		case "darwin":
			os.Exit(C.ExitDarwinToggleFailed)
		default:
			os.Exit(C.ExitLinuxToggleFailed)
		}
	}
	os.Exit(1)
}
