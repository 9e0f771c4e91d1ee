package main

import (
	"os"
	"time"

	C "github.com/wifimon/wifimon/constant"
	"github.com/wifimon/wifimon/control"
	"github.com/wifimon/wifimon/log"

	"github.com/spf13/cobra"
)

var (
	flagTimeout      float64
	flagVerbose      bool
	flagDisableColor bool
)

var mainCommand = &cobra.Command{
	Use:   "wifimon",
	Short: "Wi-Fi data usage monitor and radio control",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetVerbose(flagVerbose)
		if flagDisableColor {
			log.SetDisableColors(true)
		}
	},
}

func init() {
	mainCommand.PersistentFlags().Float64Var(&flagTimeout, "timeout", C.DefaultCommandTimeout.Seconds(), "external command timeout in seconds")
	mainCommand.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	mainCommand.PersistentFlags().BoolVar(&flagDisableColor, "disable-color", false, "disable color output")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunner() control.Runner {
	return control.NewRunner(time.Duration(flagTimeout * float64(time.Second)))
}
