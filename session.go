package flighttest

import(
	"fmt"
	"sort"
	"strings"
)

// A Session is everything recorded for one pilot during one test block. Any of the three logs
// may be missing; Maneuvers is always present, since sessions are built from the maneuver files.
type Session struct {
	Pilot         PilotId

	ManeuverFile  string
	StateFile     string
	ControlFile   string

	Maneuvers     ManeuverLog
	State         StateLog
	Control       ControlLog
}

func (s Session)HasState() bool { return s.StateFile != "" }
func (s Session)HasControl() bool { return s.ControlFile != "" }

// Missing names the logs that could not be linked to this pilot.
func (s Session)Missing() []string {
	ret := []string{}
	if s.ManeuverFile == "" { ret = append(ret, "maneuver") }
	if !s.HasState()        { ret = append(ret, "state") }
	if !s.HasControl()      { ret = append(ret, "control") }
	return ret
}

func (s Session)String() string {
	str := fmt.Sprintf("Pilot: %s\n  Maneuver file: %s\n", s.Pilot, s.ManeuverFile)
	if s.HasState() {
		str += fmt.Sprintf("  State file found: %s (%d samples)\n", s.StateFile, len(s.State))
	} else {
		str += "  No matching state file found\n"
	}
	if s.HasControl() {
		str += fmt.Sprintf("  Control file found: %s (%d samples)\n", s.ControlFile, len(s.Control))
	} else {
		str += "  No matching control file found\n"
	}
	return str
}

// {{{ LinkByPilot

func sortedKeys[T any](m map[string]T) []string {
	keys := []string{}
	for k := range m { keys = append(keys, k) }
	sort.Strings(keys)
	return keys
}

type pilotFile[T any] struct {
	Filename string
	Log      T
}

// indexByPilot keys each log by the pilot named in its filename. Filenames are visited in
// order, so when two files resolve to the same pilot the later one wins.
func indexByPilot[T any](m map[string]T) map[string]pilotFile[T] {
	ret := map[string]pilotFile[T]{}
	for _,fname := range sortedKeys(m) {
		ret[NewPilotId(fname).Key] = pilotFile[T]{fname, m[fname]}
	}
	return ret
}

// LinkByPilot matches up the three kinds of log using the pilot identity found in each
// filename (the maps are keyed by filename). There is one session per pilot found in the
// maneuver files, sorted by pilot key. Files that name no pilot all link under the empty key.
func LinkByPilot(maneuvers map[string]ManeuverLog, states map[string]StateLog, controls map[string]ControlLog) []Session {
	stateByPilot := indexByPilot(states)
	controlByPilot := indexByPilot(controls)

	byPilot := map[string]Session{}
	for key,mf := range indexByPilot(maneuvers) {
		s := Session{
			Pilot: NewPilotId(mf.Filename),
			ManeuverFile: mf.Filename,
			Maneuvers: mf.Log,
		}
		if sf,exists := stateByPilot[key]; exists {
			s.StateFile, s.State = sf.Filename, sf.Log
		}
		if cf,exists := controlByPilot[key]; exists {
			s.ControlFile, s.Control = cf.Filename, cf.Log
		}
		byPilot[key] = s
	}

	ret := []Session{}
	for _,key := range sortedKeys(byPilot) {
		ret = append(ret, byPilot[key])
	}
	return ret
}

// }}}

// SessionsFilter keeps the sessions whose pilot key, slug or number is in the list; an empty list
// keeps everything.
func SessionsFilter(sessions []Session, pilots []string) []Session {
	if len(pilots) == 0 { return sessions }
	want := map[string]bool{}
	for _,p := range pilots {
		p = strings.ToLower(strings.TrimSpace(p))
		want[p] = true
		want[strings.ReplaceAll(p, "_", " ")] = true
		want["pilot "+p] = true // "-pilot 3"
	}
	ret := []Session{}
	for _,s := range sessions {
		if want[s.Pilot.Key] { ret = append(ret, s) }
	}
	return ret
}
