package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	C "github.com/wifimon/wifimon/constant"
	"github.com/wifimon/wifimon/log"
	"github.com/wifimon/wifimon/stats"
	"github.com/wifimon/wifimon/traffic"

	"github.com/spf13/cobra"
)

var (
	monitorFlagInterface string
	monitorFlagInterval  float64
)

var commandMonitor = &cobra.Command{
	Use:   "monitor",
	Short: "Monitor interface traffic",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runMonitor()
	},
}

func init() {
	commandMonitor.Flags().StringVar(&monitorFlagInterface, "iface", "", "interface name (e.g. wlan0, wlp3s0, en0, Wi-Fi)")
	commandMonitor.Flags().Float64Var(&monitorFlagInterval, "interval", C.DefaultSampleInterval.Seconds(), "refresh interval in seconds")
	mainCommand.AddCommand(commandMonitor)
}

func runMonitor() {
	if monitorFlagInterval <= 0 {
		log.Fatal("interval must be positive")
	}
	source := stats.NewSource()
	ifaceName := monitorFlagInterface
	if ifaceName == "" {
		names, err := source.Interfaces()
		if err != nil {
			log.Error(err)
			os.Exit(C.ExitNoInterfaces)
		}
		if len(names) == 0 {
			log.Error("no interfaces found")
			os.Exit(C.ExitNoInterfaces)
		}
		ifaceName = stats.DetectWIFILike(names)[0]
	}

	ctx, cancel := context.WithCancel(context.Background())
	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(osSignals)
	go func() {
		<-osSignals
		cancel()
	}()

	monitor := &traffic.Monitor{
		Source:   source,
		Output:   os.Stdout,
		Interval: time.Duration(monitorFlagInterval * float64(time.Second)),
	}
	err := monitor.Run(ctx, ifaceName)
	if err != nil {
		log.Error(err)
		os.Exit(C.ExitBadInterface)
	}
	os.Stdout.WriteString("\nStopped.\n")
}
