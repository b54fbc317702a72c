package flighttest

import(
	"regexp"
	"strconv"
	"strings"
)

/* Pilot identity, as found in export filenames

The three log types are exported by different tools, and each names its files its own way:

  ManeuverLog_Pilot 3_2025-10-13.csv
  States_pilot_03 Block A.csv
  ControlPos_2025-10-13_15-40-21_P02 Block C.csv
  Steep Turn Right_1_A-L06_Pilot 1_09.49.13.693.csv
  ManeuverLog_Pilot Instructor.csv

The only thing they share is the pilot, so that's the join key. We normalize it into the
form "pilot N" (no zero padding), or "pilot instructor".

*/

var(
	pilotRegexp      = regexp.MustCompile(`(?i)pilot[_\s-]*(\d+)|pilot\s*instructor`)

	// Some control-position exports only carry a short form; must not be preceded by a letter,
	// so that things like "Step02" aren't taken as a pilot.
	shortPilotRegexp = regexp.MustCompile(`(?:^|[^A-Za-z])[Pp](\d{1,3})(?:[^0-9]|$)`)
)

const KeyInstructor = "pilot instructor"

type PilotId struct {
	Key    string // canonical; empty if nothing matched
	Number int    // zero for the instructor
}

func (p PilotId)String() string { return p.Key }
func (p PilotId)IsZero() bool { return p.Key == "" }
func (p PilotId)IsInstructor() bool { return p.Key == KeyInstructor }

// Slug is the key, made safe for use inside a filename.
func (p PilotId)Slug() string { return strings.ReplaceAll(p.Key, " ", "_") }

func numberedPilot(digits string) PilotId {
	n,_ := strconv.Atoi(digits) // regexp guarantees digits
	return PilotId{Key: "pilot " + strconv.Itoa(n), Number: n}
}

func NewPilotId(filename string) PilotId {
	if m := pilotRegexp.FindStringSubmatch(filename); m != nil {
		if m[1] != "" {
			return numberedPilot(m[1])
		}
		return PilotId{Key: KeyInstructor}
	}

	if m := shortPilotRegexp.FindStringSubmatch(filename); m != nil {
		return numberedPilot(m[1])
	}

	return PilotId{}
}
