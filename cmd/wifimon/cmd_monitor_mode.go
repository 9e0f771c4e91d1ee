package main

import (
	"context"
	"errors"
	"os"
	"runtime"

	C "github.com/wifimon/wifimon/constant"
	"github.com/wifimon/wifimon/control"
	"github.com/wifimon/wifimon/log"

	"github.com/spf13/cobra"
)

var monitorModeFlagInterface string

var commandMonitorMode = &cobra.Command{
	Use:       "monitor-mode {enable|disable}",
	Short:     "Switch a wireless interface between monitor and managed mode (Linux only)",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"enable", "disable"},
	Run: func(cmd *cobra.Command, args []string) {
		setMonitorMode(args[0] == "enable")
	},
}

func init() {
	commandMonitorMode.Flags().StringVar(&monitorModeFlagInterface, "iface", "", "wireless interface (e.g. wlan0, wlp3s0)")
	commandMonitorMode.MarkFlagRequired("iface")
	mainCommand.AddCommand(commandMonitorMode)
}

func setMonitorMode(enable bool) {
	controller := &control.ModeController{Runner: newRunner(), GOOS: runtime.GOOS}
	err := controller.Set(context.Background(), monitorModeFlagInterface, enable)
	if err == nil {
		if enable {
			log.Info("monitor mode requested on ", monitorModeFlagInterface, ", verify with: iw dev ", monitorModeFlagInterface, " info")
		} else {
			log.Info("managed mode restored on ", monitorModeFlagInterface)
		}
		return
	}
	log.Error(err)
	if errors.Is(err, control.ErrUnsupportedPlatform) {
		os.Exit(C.ExitModeLinuxOnly)
	}
	if enable {
		os.Exit(C.ExitEnableModeFailed)
	}
	os.Exit(C.ExitDisableModeFailed)
}
