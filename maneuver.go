package flighttest

import(
	"fmt"
	"regexp"
	"strings"
)

/* Maneuver logs

The observer's tool writes one row per annotation; most of them are free-text comments, but
maneuvers are bracketed by machine-generated markers:

  Time,Maneuver/Comments
  9:49:13,"MANEUVER_START_Steep Turn Right"
  9:49:40,"pilot reports light turbulence"
  9:50:02,"MANEUVER_STOP_Steep Turn Right"

Times are typed by hand, so they may lack the leading zero.

*/

const ManeuverCommentColumn = "Maneuver/Comments"

var maneuverRegexp = regexp.MustCompile(`^MANEUVER_(START|STOP)_(.*)$`)

type ManeuverKind int
const(
	ManeuverStart ManeuverKind = iota
	ManeuverStop
)

func (k ManeuverKind)String() string {
	if k == ManeuverStart { return "START" }
	return "STOP"
}

type ManeuverEvent struct {
	TimeOfDay
	Kind     ManeuverKind
	Name     string
}

// Active is the START_/STOP_ label used on plots.
func (e ManeuverEvent)Active() string { return e.Kind.String() + "_" + e.Name }

func (e ManeuverEvent)String() string { return fmt.Sprintf("[%s] %s", e.TimeOfDay, e.Active()) }

// ParseManeuverComment pulls the maneuver marker out of a comment, if there is one. The bool
// is false for ordinary comments.
func ParseManeuverComment(comment string) (ManeuverKind, string, bool) {
	comment = strings.Trim(strings.TrimSpace(comment), `"`)
	if !strings.HasPrefix(comment, "MANEUVER_") { return 0, "", false }

	m := maneuverRegexp.FindStringSubmatch(comment)
	if m == nil { return 0, "", false }

	kind := ManeuverStart
	if m[1] == "STOP" { kind = ManeuverStop }
	return kind, m[2], true
}

func NewManeuverEvent(timeStr, comment string) (ManeuverEvent, bool, error) {
	kind,name,ok := ParseManeuverComment(comment)
	if !ok { return ManeuverEvent{}, false, nil }

	tod,err := ParseTimeOfDay(timeStr)
	if err != nil {
		return ManeuverEvent{}, true, fmt.Errorf("maneuver %s_%s: %v", kind, name, err)
	}

	return ManeuverEvent{TimeOfDay: tod, Kind: kind, Name: name}, true, nil
}

// ManeuverLog is the maneuver events (comments excluded), in file order.
type ManeuverLog []ManeuverEvent

// Names lists each maneuver once, in the order first started.
func (l ManeuverLog)Names() []string {
	seen := map[string]bool{}
	names := []string{}
	for _,e := range l {
		if e.Kind != ManeuverStart || seen[e.Name] { continue }
		seen[e.Name] = true
		names = append(names, e.Name)
	}
	return names
}

// {{{ intervals

// ManeuverInterval is the span of a control log covered by one maneuver; both indices are
// inclusive.
type ManeuverInterval struct {
	Name       string
	StartIndex int
	EndIndex   int
	StartTime  TimeOfDay
	EndTime    TimeOfDay
}

func (mi ManeuverInterval)String() string {
	return fmt.Sprintf("%s [%d-%d] %s-%s", mi.Name, mi.StartIndex, mi.EndIndex, mi.StartTime,
		mi.EndTime)
}

func (mi ManeuverInterval)NumSamples() int { return mi.EndIndex - mi.StartIndex + 1 }
func (mi ManeuverInterval)DurationSeconds() int { return mi.EndTime.Seconds() - mi.StartTime.Seconds() }

// SegmentProblem records a START event that could not be turned into an interval.
type SegmentProblem struct {
	EventIndex int
	Event      ManeuverEvent
	Reason     string
}

func (sp SegmentProblem)String() string {
	return fmt.Sprintf("event %d %s: %s", sp.EventIndex, sp.Event, sp.Reason)
}

// ExtractIntervals pairs each START with the event immediately after it. If that event names
// the same maneuver, the pair's times are located in the control log and returned as an
// interval. Anything else about the START is reported as a problem, and we move on.
func ExtractIntervals(events ManeuverLog, control ControlLog) ([]ManeuverInterval, []SegmentProblem) {
	intervals := []ManeuverInterval{}
	problems := []SegmentProblem{}

	problem := func(i int, reason string, args ...interface{}) {
		problems = append(problems, SegmentProblem{i, events[i], fmt.Sprintf(reason, args...)})
	}

	for i,e := range events {
		if e.Kind != ManeuverStart { continue }

		start := control.IndexOfTime(e.TimeOfDay)
		if start < 0 {
			problem(i, "start time %s not in control log", e.TimeOfDay)
			continue
		}

		if i+1 >= len(events) {
			problem(i, "no event after START")
			continue
		}
		next := events[i+1]
		if next.Name != e.Name {
			problem(i, "next event is %s, not a STOP of this maneuver", next.Active())
			continue
		}

		end := control.IndexOfTime(next.TimeOfDay)
		if end < 0 {
			problem(i, "stop time %s not in control log", next.TimeOfDay)
			continue
		} else if end < start {
			problem(i, "stop time %s precedes start time %s", next.TimeOfDay, e.TimeOfDay)
			continue
		}

		intervals = append(intervals, ManeuverInterval{
			Name: e.Name,
			StartIndex: start,
			EndIndex: end,
			StartTime: e.TimeOfDay,
			EndTime: next.TimeOfDay,
		})
	}

	return intervals, problems
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
