package log

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	red    = 31
	yellow = 33
	blue   = 36
	gray   = 37
)

type TextFormatter struct {
	DisableColors   bool
	TimestampFormat string
}

func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}
	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = "2006-01-02 15:04:05"
	}
	var levelColor int
	switch entry.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		levelColor = gray
	case logrus.WarnLevel:
		levelColor = yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = red
	default:
		levelColor = blue
	}
	levelText := strings.ToUpper(entry.Level.String())
	if f.DisableColors {
		fmt.Fprintf(b, "[%s] %s %s", entry.Time.Format(timestampFormat), levelText, entry.Message)
	} else {
		fmt.Fprintf(b, "%s \x1b[%dm%s\x1b[0m %s", entry.Time.Format(timestampFormat), levelColor, levelText, entry.Message)
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}
