package humanize

import "strconv"

var sizes = []string{"B", "KB", "MB", "GB", "TB"}

// Bytes formats a byte count with two decimal digits and a unit suffix,
// dividing by 1024 until the value fits. Scaling stops at TB.
func Bytes(s float64) string {
	i := 0
	for s >= 1024 && i < len(sizes)-1 {
		s /= 1024
		i++
	}
	return strconv.FormatFloat(s, 'f', 2, 64) + " " + sizes[i]
}

// Rate formats a bytes-per-second value.
func Rate(s float64) string {
	return Bytes(s) + "/s"
}
