package media

import (
	"regexp"
	"strconv"
)

var startPattern = regexp.MustCompile(`^(?:(\d+)h)?(?:(\d+)m)?(\d+)s?$`)

// ParseStart converts a start-time query value ("90", "90s", "2m3s",
// "1h2m3s") into seconds. Anything else parses to 0, which callers treat as
// "no start time".
func ParseStart(raw string) int {
	groups := startPattern.FindStringSubmatch(raw)
	if groups == nil {
		return 0
	}
	hours, _ := strconv.Atoi(groups[1])
	minutes, _ := strconv.Atoi(groups[2])
	seconds, _ := strconv.Atoi(groups[3])
	return hours*3600 + minutes*60 + seconds
}
