package constant

import "time"

const Version = "0.1.0"

const (
	DefaultCommandTimeout = 15 * time.Second
	DefaultSampleInterval = 1 * time.Second
)
