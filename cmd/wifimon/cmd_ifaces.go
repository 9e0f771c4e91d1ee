package main

import (
	"os"

	"github.com/wifimon/wifimon/log"
	"github.com/wifimon/wifimon/stats"

	"github.com/spf13/cobra"
)

var commandIfaces = &cobra.Command{
	Use:   "ifaces",
	Short: "List network interfaces",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := listInterfaces()
		if err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	mainCommand.AddCommand(commandIfaces)
}

func listInterfaces() error {
	names, err := stats.NewSource().Interfaces()
	if err != nil {
		return err
	}
	for _, name := range names {
		os.Stdout.WriteString(name + "\n")
	}
	return nil
}
