package analysis

import(
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/skypies/geo"

	ft "github.com/skypies/flighttest"
	"github.com/skypies/flighttest/csvlog"
	"github.com/skypies/flighttest/report"
)

// A minute of control positions at 1Hz, 10:00:00 - 10:00:59, with the cyclic drifting.
func testControlLog() ft.ControlLog {
	l := ft.ControlLog{}
	for i:=0; i<60; i++ {
		l = append(l, ft.ControlSample{
			Time: fmt.Sprintf("10:00:%02d.000", i),
			Pitch: 2.5 + float64(i)*0.001,
			Roll: 2.5 - float64(i)*0.001,
			Collective: float64(i%10),
			Pedal: -1.0,
		})
	}
	return l
}

func testStateLog() ft.StateLog {
	l := ft.StateLog{}
	for i:=0; i<3; i++ {
		l = append(l, ft.StateSample{
			TimeOfDay: ft.TimeOfDay(fmt.Sprintf("10:00:%02d", i)),
			Latlong: geo.Latlong{Lat: 37.0 + float64(i)*0.001, Long: -122.0},
			HeightM: 100 + float64(i),
			VelDownMS: -1.0,
			GForce: 1.0,
			Heading: 90,
		})
	}
	return l
}

func testManeuvers() ft.ManeuverLog {
	ev := func(tod string, kind ft.ManeuverKind, name string) ft.ManeuverEvent {
		return ft.ManeuverEvent{TimeOfDay: ft.TimeOfDay(tod), Kind: kind, Name: name}
	}
	return ft.ManeuverLog{
		ev("10:00:05", ft.ManeuverStart, "Hover"),
		ev("10:00:15", ft.ManeuverStop,  "Hover"),
		ev("10:00:20", ft.ManeuverStart, "Normal Climb"),
		ev("10:00:30", ft.ManeuverStop,  "Normal Climb"),
		ev("10:00:40", ft.ManeuverStart, "Steep Turn Right"), // never stopped
	}
}

func testSessions() []ft.Session {
	return []ft.Session{
		{
			Pilot: ft.NewPilotId("ManeuverLog_Pilot 1.csv"),
			ManeuverFile: "ManeuverLog_Pilot 1",
			StateFile: "States_pilot_01",
			ControlFile: "ControlPos_P01",
			Maneuvers: testManeuvers(),
			State: testStateLog(),
			Control: testControlLog(),
		},
		{
			Pilot: ft.NewPilotId("ManeuverLog_Pilot 2.csv"),
			ManeuverFile: "ManeuverLog_Pilot 2",
			Maneuvers: testManeuvers(),
		},
	}
}

func runReport(t *testing.T, name string, modify func(*report.Options)) report.Report {
	t.Helper()
	return runReportOn(t, name, testSessions(), modify)
}

func runReportOn(t *testing.T, name string, sessions []ft.Session, modify func(*report.Options)) report.Report {
	t.Helper()
	opt := report.DefaultOptions()
	opt.Name = name
	opt.OutputDir = t.TempDir()
	if modify != nil { modify(&opt) }

	r,err := report.SetupReport(opt, nil)
	if err != nil { t.Fatalf("SetupReport(%s): %v", name, err) }
	r.Run(sessions)
	return r
}

func assertFile(t *testing.T, path, prefix string) {
	t.Helper()
	contents,err := os.ReadFile(path)
	if err != nil {
		t.Errorf("read %s: %v", path, err)
		return
	}
	if !bytes.HasPrefix(contents, []byte(prefix)) {
		t.Errorf("%s: does not start with %q", path, prefix)
	}
}

func TestLinkageReport(t *testing.T) {
	r := runReport(t, "linkage", nil)

	if len(r.RowsText) != 2 { t.Fatalf("%d rows, expected 2", len(r.RowsText)) }
	if r.RowsText[0][len(LinkageHeaders)-1] != "" {
		t.Errorf("pilot 1 has missing logs: %v", r.RowsText[0])
	}
	if r.RowsText[1][len(LinkageHeaders)-1] != "state control" {
		t.Errorf("pilot 2 missing logs: %q", r.RowsText[1][len(LinkageHeaders)-1])
	}
	if r.I["[D] All three logs found"] != 1 { t.Errorf("counters: %v", r.I) }
}

func TestManeuversReport(t *testing.T) {
	r := runReport(t, "maneuvers", nil)

	if len(r.RowsText) != 2 { t.Fatalf("%d rows, expected 2: %v", len(r.RowsText), r.RowsText) }
	if r.I["[E] Maneuvers not extracted (see log)"] != 1 {
		t.Errorf("problems: %v", r.I)
	}
	if r.I["[C] Skipped, no control log"] != 1 {
		t.Errorf("pilot 2 not skipped: %v", r.I)
	}

	raw := testControlLog()
	cal := ft.DefaultCalibration()
	expected := []struct{
		name string
		samples string
		file string
		stop int // index of the STOP second, which is the last row
	}{
		{"Hover",        "11", "BlockA_pilot 1_Hover_controlpos.csv", 15},
		{"Normal Climb", "11", "BlockA_pilot 1_Normal Climb_controlpos.csv", 30},
	}
	for i,e := range expected {
		row := r.RowsText[i]
		if row[1] != e.name || row[6] != e.samples {
			t.Errorf("row %d: %v", i, row)
		}
		path := filepath.Join(r.Options.OutputDir, e.file)
		if row[len(row)-1] != path {
			t.Errorf("row %d: file %q, expected %q", i, row[len(row)-1], path)
		}
		assertFile(t, path, "Time,Pitch,Roll,Collective,Pedal\n10:00:")

		tbl,err := csvlog.ReadFile(path)
		if err != nil { t.Fatal(err) }
		if len(tbl.Rows) != 11 { t.Fatalf("%s: %d rows, expected 11", e.file, len(tbl.Rows)) }
		last := tbl.Rows[len(tbl.Rows)-1]
		if last[csvlog.ColTime] != raw[e.stop].Time {
			t.Errorf("%s: last row at %s, expected %s", e.file, last[csvlog.ColTime], raw[e.stop].Time)
		}

		// Cyclic channels are in degrees from the index 1 reference, not volts
		for col,volts := range map[string][2]float64{
			"Pitch": {raw[e.stop].Pitch, raw[1].Pitch},
			"Roll":  {raw[e.stop].Roll, raw[1].Roll},
		} {
			got,err := strconv.ParseFloat(last[col], 64)
			if err != nil { t.Fatal(err) }
			if want := cal.VoltsToDegrees(volts[0], volts[1]); math.Abs(got-want) > 1e-9 {
				t.Errorf("%s: %s = %f, expected %f degrees", e.file, col, got, want)
			}
		}
	}
	if len(r.Outputs) != 2 { t.Errorf("outputs: %v", r.Outputs) }
}

func TestManeuversReportFilter(t *testing.T) {
	r := runReport(t, "maneuvers", func(o *report.Options) { o.Maneuvers = []string{"hover"} })

	if len(r.RowsText) != 1 || r.RowsText[0][1] != "Hover" {
		t.Errorf("rows: %v", r.RowsText)
	}
	if r.I["[D] Maneuvers filtered out"] != 1 { t.Errorf("counters: %v", r.I) }
}

func TestMinMaxReport(t *testing.T) {
	r := runReport(t, "minmax", nil)

	if len(r.RowsText) != 2 { t.Fatalf("%d rows, expected 2: %v", len(r.RowsText), r.RowsText) }
	if r.RowsText[1][0] != "ALL" { t.Errorf("no summary row: %v", r.RowsText[1]) }

	// Collective passes through unconverted; 0..9
	idx := 3 + 2*2
	if r.RowsText[0][idx] != "0.00" || r.RowsText[0][idx+1] != "9.00" {
		t.Errorf("collective min/max: %v", r.RowsText[0][idx:idx+2])
	}

	for _,name := range []string{"local_mins.csv", "local_maxs.csv"} {
		assertFile(t, filepath.Join(r.Options.OutputDir, MinMaxDir, name),
			"Pitch,Roll,Collective,Pedal\n")
	}
}

func TestStateSummaryReport(t *testing.T) {
	r := runReport(t, "statesummary", nil)

	if len(r.RowsText) != 1 { t.Fatalf("%d rows, expected 1", len(r.RowsText)) }
	row := r.RowsText[0]
	if row[1] != "10:00:00" || row[2] != "10:00:02" || row[3] != "2" {
		t.Errorf("times: %v", row[1:4])
	}
	if !strings.HasPrefix(row[5], "196.8") {
		t.Errorf("min VS %q, expected ~196.85", row[5])
	}
	if r.F["[E] Total path flown (KM)"] < 0.2 || r.F["[E] Total path flown (KM)"] > 0.25 {
		t.Errorf("path %.3f, expected ~0.22", r.F["[E] Total path flown (KM)"])
	}
	if stats,valid := r.H.Stats(); !valid || stats.N != 3 {
		t.Errorf("VS histogram: %v %v", stats, valid)
	}
}

func TestSessionPanels(t *testing.T) {
	sessions := testSessions()
	s := sessions[0]
	panels,err := SessionPanels(&s, s.Control.Convert(ft.DefaultCalibration()), 3)
	if err != nil { t.Fatal(err) }

	names := []string{}
	for _,p := range panels { names = append(names, p.Name) }
	expected := []string{
		ft.StateSeriesNames["vs"], ft.StateSeriesNames["height"], ft.StateSeriesNames["heading"],
		"Pitch", "Roll",
		ft.StateSeriesNames["roll_state"],
		"Collective", "Pedal",
	}
	if strings.Join(names, "|") != strings.Join(expected, "|") {
		t.Errorf("panels were %v", names)
	}

	// The pitch panel has min & max, plus the two limits
	if len(panels[3].RefLines) != 4 { t.Errorf("pitch reflines: %v", panels[3].RefLines) }

	s = sessions[1]
	if panels,_ := SessionPanels(&s, nil, 1); len(panels) != 0 {
		t.Errorf("session without logs got %d panels", len(panels))
	}
}

func TestTimeseriesReport(t *testing.T) {
	r := runReport(t, "timeseries", func(o *report.Options) { o.SmoothingWindow = 5 })

	if r.I["[C] <b>Reports generated</b>"] != 1 { t.Errorf("counters: %v", r.I) }
	if len(r.RowsText) != 1 { t.Fatalf("rows: %v", r.RowsText) }

	assertFile(t, filepath.Join(r.Options.OutputDir, "pilot_1_report.pdf"), "%PDF")
	assertFile(t, filepath.Join(r.Options.OutputDir, "pilot_1_controlpos.png"), "\x89PNG")

	if _,err := os.Stat(filepath.Join(r.Options.OutputDir, "pilot_2_report.pdf")); err == nil {
		t.Errorf("pilot 2 has no logs, but got a report")
	}
}

// A maneuver log whose filename names no pilot still links, under the empty key.
func pilotlessSessions() []ft.Session {
	return ft.LinkByPilot(
		map[string]ft.ManeuverLog{"ManeuverLog_2025-10-13 Block A": testManeuvers()},
		map[string]ft.StateLog{"States_2025-10-13 Block A": testStateLog()},
		map[string]ft.ControlLog{"ControlPos_2025-10-13 Block A": testControlLog()},
	)
}

func TestPilotlessSession(t *testing.T) {
	sessions := pilotlessSessions()
	if len(sessions) != 1 || !sessions[0].Pilot.IsZero() {
		t.Fatalf("expected one pilotless session, got %v", sessions)
	}

	r := runReportOn(t, "linkage", sessions, nil)
	if len(r.RowsText) != 1 || r.RowsText[0][1] != "ManeuverLog_2025-10-13 Block A" {
		t.Errorf("linkage rows: %v", r.RowsText)
	}
	if r.I["[B] No pilot in maneuver filename"] != 1 { t.Errorf("counters: %v", r.I) }

	r = runReportOn(t, "maneuvers", sessions, nil)
	if len(r.Outputs) != 2 { t.Fatalf("maneuvers outputs: %v", r.Outputs) }
	assertFile(t, filepath.Join(r.Options.OutputDir, "BlockA__Hover_controlpos.csv"), "Time,")

	r = runReportOn(t, "timeseries", sessions, nil)
	if len(r.Outputs) != 0 || r.I["[C] Skipped, no pilot to name the report after"] != 1 {
		t.Errorf("timeseries: outputs %v, counters %v", r.Outputs, r.I)
	}

	r = runReportOn(t, "linkage", sessions, func(o *report.Options) { o.Pilots = []string{"1"} })
	if len(r.RowsText) != 0 { t.Errorf("pilot filter kept the pilotless session") }
}
