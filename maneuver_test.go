package flighttest

import(
	"fmt"
	"testing"
)

func TestParseManeuverComment(t *testing.T) {
	tests := []struct{
		Comment string
		Kind    ManeuverKind
		Name    string
		Ok      bool
	}{
		{`MANEUVER_START_Straight Level`,        ManeuverStart, "Straight Level", true},
		{`  "MANEUVER_STOP_Normal Climb"  `,     ManeuverStop,  "Normal Climb",   true},
		{`MANEUVER_START_Steep_Turn`,            ManeuverStart, "Steep_Turn",     true},
		{`pilot reports light turbulence`,       0,             "",               false},
		{`MANEUVER_PAUSE_Hover`,                 0,             "",               false},
		{`note: MANEUVER_START_Hover`,           0,             "",               false},
	}

	for _,test := range tests {
		kind,name,ok := ParseManeuverComment(test.Comment)
		if ok != test.Ok || kind != test.Kind || name != test.Name {
			t.Errorf("%q - expected (%v,%q,%v), got (%v,%q,%v)", test.Comment,
				test.Kind, test.Name, test.Ok, kind, name, ok)
		}
	}
}

func TestNewManeuverEvent(t *testing.T) {
	e,ok,err := NewManeuverEvent("9:49:13", "MANEUVER_START_Steep Turn Right")
	if err != nil || !ok {
		t.Fatalf("expected event, got ok=%v err=%v", ok, err)
	}
	if e.TimeOfDay != "09:49:13" || e.Active() != "START_Steep Turn Right" {
		t.Errorf("bad event %s", e)
	}

	if _,ok,err := NewManeuverEvent("9:49:13", "just a comment"); ok || err != nil {
		t.Errorf("comment should be skipped silently")
	}
	if _,ok,err := NewManeuverEvent("later", "MANEUVER_STOP_Hover"); !ok || err == nil {
		t.Errorf("bad time on a maneuver should be an error")
	}
}

// One sample per second from 10:00:00 to 10:00:59
func minuteOfControl() ControlLog {
	l := ControlLog{}
	for s := 0; s < 60; s++ {
		l = append(l, ControlSample{Time: fmt.Sprintf("10:00:%02d.000", s)})
	}
	return l
}

func ev(tod string, kind ManeuverKind, name string) ManeuverEvent {
	return ManeuverEvent{TimeOfDay(tod), kind, name}
}

func TestExtractIntervals(t *testing.T) {
	events := ManeuverLog{
		ev("10:00:05", ManeuverStart, "Straight Level"),
		ev("10:00:15", ManeuverStop,  "Straight Level"),
		ev("10:00:20", ManeuverStart, "Normal Climb"),
		ev("10:00:30", ManeuverStop,  "Normal Climb"),
	}

	intervals,problems := ExtractIntervals(events, minuteOfControl())
	if len(problems) != 0 {
		t.Errorf("unexpected problems: %v", problems)
	}

	expected := []ManeuverInterval{
		{"Straight Level", 5, 15, "10:00:05", "10:00:15"},
		{"Normal Climb",  20, 30, "10:00:20", "10:00:30"},
	}
	if len(intervals) != len(expected) {
		t.Fatalf("expected %d intervals, got %v", len(expected), intervals)
	}
	for i := range expected {
		if intervals[i] != expected[i] {
			t.Errorf("[%d] expected %s, got %s", i, expected[i], intervals[i])
		}
	}
	if intervals[0].NumSamples() != 11 || intervals[0].DurationSeconds() != 10 {
		t.Errorf("bad size for %s", intervals[0])
	}
}

func TestExtractIntervalsProblems(t *testing.T) {
	tests := []struct{
		Descrip   string
		Events    ManeuverLog
		Intervals int
		Problems  int
	}{
		{"start with no following event",
			ManeuverLog{ ev("10:00:05", ManeuverStart, "Hover") }, 0, 1},
		{"interleaved maneuvers",
			ManeuverLog{
				ev("10:00:05", ManeuverStart, "Hover"),
				ev("10:00:06", ManeuverStart, "Climb"),
				ev("10:00:07", ManeuverStop,  "Climb"),
				ev("10:00:08", ManeuverStop,  "Hover"),
			}, 1, 1},
		{"start before the control log",
			ManeuverLog{
				ev("09:59:00", ManeuverStart, "Hover"),
				ev("10:00:08", ManeuverStop,  "Hover"),
			}, 0, 1},
		{"stop after the control log",
			ManeuverLog{
				ev("10:00:50", ManeuverStart, "Hover"),
				ev("10:01:08", ManeuverStop,  "Hover"),
			}, 0, 1},
		{"stop precedes start",
			ManeuverLog{
				ev("10:00:50", ManeuverStart, "Hover"),
				ev("10:00:40", ManeuverStop,  "Hover"),
			}, 0, 1},
		{"stray stops are ignored",
			ManeuverLog{
				ev("10:00:01", ManeuverStop,  "Hover"),
				ev("10:00:02", ManeuverStart, "Hover"),
				ev("10:00:03", ManeuverStop,  "Hover"),
			}, 1, 0},
	}

	for _,test := range tests {
		intervals,problems := ExtractIntervals(test.Events, minuteOfControl())
		if len(intervals) != test.Intervals || len(problems) != test.Problems {
			t.Errorf("%s - expected %d/%d intervals/problems, got %v / %v", test.Descrip,
				test.Intervals, test.Problems, intervals, problems)
		}
	}
}

func TestManeuverNames(t *testing.T) {
	l := ManeuverLog{
		ev("10:00:05", ManeuverStart, "Hover"),
		ev("10:00:06", ManeuverStop,  "Hover"),
		ev("10:00:07", ManeuverStart, "Climb"),
		ev("10:00:08", ManeuverStop,  "Climb"),
		ev("10:00:09", ManeuverStart, "Hover"),
	}
	names := l.Names()
	if len(names) != 2 || names[0] != "Hover" || names[1] != "Climb" {
		t.Errorf("bad names %v", names)
	}
}
