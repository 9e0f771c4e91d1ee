package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

var std *logrus.Logger

func init() {
	std = logrus.New()
	std.SetOutput(os.Stderr)
	std.SetLevel(logrus.InfoLevel)
	std.SetFormatter(&TextFormatter{})
}

func StdLogger() *logrus.Logger {
	return std
}

func SetVerbose(verbose bool) {
	if verbose {
		std.SetLevel(logrus.DebugLevel)
	}
}

func SetDisableColors(disable bool) {
	std.SetFormatter(&TextFormatter{DisableColors: disable})
}
