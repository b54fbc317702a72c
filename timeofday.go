package flighttest

import(
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a wall-clock time, "HH:MM:SS", at one second resolution. It is the only time
// reference that all three logs share; the INS stamps its rows with a full date, the DAQ with
// a fractional time of day, and the maneuver log with whatever the observer typed.
type TimeOfDay string

// ParseTimeOfDay normalizes "9:49:13", "09:49:13" and "09:49:13.693" to "09:49:13".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "."); i >= 0 {
		s = s[:i]
	}
	if len(s) < 8 {
		s = strings.Repeat("0", 8-len(s)) + s
	}

	if len(s) != 8 || s[2] != ':' || s[5] != ':' {
		return "", fmt.Errorf("time of day '%s' not in HH:MM:SS form", s)
	}
	for _,i := range []int{0,1,3,4,6,7} {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("time of day '%s' not in HH:MM:SS form", s)
		}
	}

	return TimeOfDay(s), nil
}

// Takes chars [11:19] from a timestamp like "2025-10-13 15:40:21.123"
func TimeOfDayFromHumanTimestamp(s string) (TimeOfDay, error) {
	if len(s) < 19 {
		return "", fmt.Errorf("timestamp '%s' too short", s)
	}
	return ParseTimeOfDay(s[11:19])
}

func (t TimeOfDay)String() string { return string(t) }

func (t TimeOfDay)Seconds() int {
	if len(t) != 8 { return 0 }
	h,_ := strconv.Atoi(string(t[0:2]))
	m,_ := strconv.Atoi(string(t[3:5]))
	s,_ := strconv.Atoi(string(t[6:8]))
	return h*3600 + m*60 + s
}

func TimeOfDayFromSeconds(secs float64) TimeOfDay {
	n := int(secs)
	if n < 0 { n = 0 }
	return TimeOfDay(fmt.Sprintf("%02d:%02d:%02d", (n/3600)%24, (n/60)%60, n%60))
}
