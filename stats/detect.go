package stats

import "strings"

// DetectWIFILike filters names down to those matching common wireless
// adapter naming: Linux "wlan0"/"wlp*"/"wlo*", macOS "en0"/"en1", Windows
// "Wi-Fi". When nothing matches, every name stays a candidate.
func DetectWIFILike(names []string) []string {
	var candidates []string
	for _, name := range names {
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, "wl") ||
			strings.HasPrefix(lower, "wlan") ||
			lower == "en0" || lower == "en1" ||
			strings.Contains(lower, "wi-fi") ||
			strings.Contains(lower, "wifi") {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) == 0 {
		return names
	}
	return candidates
}
