package csvlog

import(
	"fmt"
	"strconv"
	"strings"

	"github.com/skypies/geo"
	ft "github.com/skypies/flighttest"
)

// The INS column names we decode.
const(
	ColHumanTimestamp = "Human Timestamp"
	ColUnixTime       = "Unix Time"
	ColMicroseconds   = "Microseconds"
	ColLatitude       = "Latitude (degrees)"
	ColLongitude      = "Longitude (degrees)"
	ColHeight         = "Height (m)"
	ColVelNorth       = "Velocity North (m/s)"
	ColVelEast        = "Velocity East (m/s)"
	ColVelDown        = "Velocity Down (m/s)"
	ColAccelX         = "Acceleration X (m/s/s)"
	ColAccelY         = "Acceleration Y (m/s/s)"
	ColAccelZ         = "Acceleration Z (m/s/s)"
	ColGForce         = "G Force (g)"
	ColRoll           = "Roll (degrees)"
	ColPitch          = "Pitch (degrees)"
	ColHeading        = "Heading (degrees)"
	ColAngVelX        = "Angular Velocity X (degrees/s)"
	ColAngVelY        = "Angular Velocity Y (degrees/s)"
	ColAngVelZ        = "Angular Velocity Z (degrees/s)"

	ColTime           = "Time"

	// The simulator's export
	ColSimLatCyclic   = "LatCyclic(percent)"
	ColSimLonCyclic   = "LonCyclic(percent)"
	ColSimLatDegrees  = "LatCyclic(degrees)"
)

// DecodeStats counts what was wrong with a table while decoding it. Bad values are left as
// zero; bad rows (no usable time) are dropped.
type DecodeStats struct {
	Rows       int
	BadValues  int
	BadRows    int
}

func (ds DecodeStats)String() string {
	return fmt.Sprintf("%d rows (%d bad values, %d rows dropped)", ds.Rows, ds.BadValues, ds.BadRows)
}

func (t Table)requireColumns(cols ...string) error {
	missing := []string{}
	for _,c := range cols {
		if !t.HasColumn(c) { missing = append(missing, c) }
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing columns %s", t.Name, strings.Join(missing, ", "))
	}
	return nil
}

// floatVal parses the named field; empty fields and junk count as bad values and come back as 0.
func (r Row)floatVal(col string, bad *int) float64 {
	f,err := strconv.ParseFloat(strings.TrimSpace(r[col]), 64)
	if err != nil {
		*bad++
		return 0.0
	}
	return f
}

func (r Row)intVal(col string, bad *int) int64 {
	i,err := strconv.ParseInt(strings.TrimSpace(r[col]), 10, 64)
	if err != nil {
		*bad++
		return 0
	}
	return i
}

// {{{ row.ToStateSample

func (r Row)ToStateSample() (ft.StateSample, int, error) {
	bad := 0
	tod,err := ft.TimeOfDayFromHumanTimestamp(r[ColHumanTimestamp])
	if err != nil {
		return ft.StateSample{}, 0, err
	}

	s := ft.StateSample{
		HumanTimestamp: r[ColHumanTimestamp],
		TimeOfDay:      tod,
		UnixTime:       r.intVal(ColUnixTime, &bad),
		Microseconds:   r.intVal(ColMicroseconds, &bad),
		Latlong:        geo.Latlong{Lat: r.floatVal(ColLatitude, &bad), Long: r.floatVal(ColLongitude, &bad)},
		HeightM:        r.floatVal(ColHeight, &bad),
		VelNorthMS:     r.floatVal(ColVelNorth, &bad),
		VelEastMS:      r.floatVal(ColVelEast, &bad),
		VelDownMS:      r.floatVal(ColVelDown, &bad),
		AccelX:         r.floatVal(ColAccelX, &bad),
		AccelY:         r.floatVal(ColAccelY, &bad),
		AccelZ:         r.floatVal(ColAccelZ, &bad),
		GForce:         r.floatVal(ColGForce, &bad),
		Roll:           r.floatVal(ColRoll, &bad),
		Pitch:          r.floatVal(ColPitch, &bad),
		Heading:        r.floatVal(ColHeading, &bad),
		AngVelX:        r.floatVal(ColAngVelX, &bad),
		AngVelY:        r.floatVal(ColAngVelY, &bad),
		AngVelZ:        r.floatVal(ColAngVelZ, &bad),
	}

	return s, bad, nil
}

// }}}
// {{{ row.ToControlSample

// ToControlSample stores Time zero padded ("9:49:13.020" becomes "09:49:13.020"), so that the
// first eight characters are always the time of day.
func (r Row)ToControlSample() (ft.ControlSample, int, error) {
	bad := 0
	raw := strings.TrimSpace(r[ColTime])
	tod,err := ft.ParseTimeOfDay(raw)
	if err != nil {
		return ft.ControlSample{}, 0, err
	}
	frac := ""
	if dot := strings.Index(raw, "."); dot >= 0 {
		frac = raw[dot:]
	}

	s := ft.ControlSample{
		Time:       string(tod) + frac,
		Pitch:      r.floatVal("Pitch", &bad),
		Roll:       r.floatVal("Roll", &bad),
		Collective: r.floatVal("Collective", &bad),
		Pedal:      r.floatVal("Pedal", &bad),
	}
	return s, bad, nil
}

// }}}

// {{{ table.ToStateLog

// ToStateLog decodes an INS export. The only columns that must be present are the timestamp
// and the ones the reports plot; the rest decode as zero.
func (t Table)ToStateLog() (ft.StateLog, DecodeStats, error) {
	stats := DecodeStats{}
	err := t.requireColumns(ColHumanTimestamp, ColHeight, ColVelDown, ColHeading, ColRoll)
	if err != nil {
		return nil, stats, err
	}

	l := make(ft.StateLog, 0, len(t.Rows))
	for _,r := range t.Rows {
		stats.Rows++
		s,bad,err := r.ToStateSample()
		if err != nil {
			stats.BadRows++
			continue
		}
		stats.BadValues += bad
		l = append(l, s)
	}

	return l, stats, nil
}

// }}}
// {{{ table.ToControlLog

func (t Table)ToControlLog() (ft.ControlLog, DecodeStats, error) {
	stats := DecodeStats{}
	if err := t.requireColumns(append([]string{ColTime}, ft.ControlColumns...)...); err != nil {
		return nil, stats, err
	}

	l := make(ft.ControlLog, 0, len(t.Rows))
	for _,r := range t.Rows {
		stats.Rows++
		s,bad,err := r.ToControlSample()
		if err != nil {
			stats.BadRows++
			continue
		}
		stats.BadValues += bad
		l = append(l, s)
	}

	return l, stats, nil
}

// }}}
// {{{ table.ToManeuverLog

// ToManeuverLog keeps just the maneuver markers, in file order; free-text comments are
// dropped. A marker with an unreadable time is dropped and counted as a bad row.
func (t Table)ToManeuverLog() (ft.ManeuverLog, DecodeStats, error) {
	stats := DecodeStats{}
	if err := t.requireColumns(ColTime, ft.ManeuverCommentColumn); err != nil {
		return nil, stats, err
	}

	l := ft.ManeuverLog{}
	for _,r := range t.Rows {
		stats.Rows++
		e,ok,err := ft.NewManeuverEvent(r[ColTime], r[ft.ManeuverCommentColumn])
		if err != nil {
			stats.BadRows++
			continue
		} else if !ok {
			continue
		}
		l = append(l, e)
	}

	return l, stats, nil
}

// }}}

// {{{ table.ToSimLatCyclicDegrees

// ToSimLatCyclicDegrees converts the simulator's lateral cyclic column, one value per row.
func (t Table)ToSimLatCyclicDegrees() ([]float64, DecodeStats, error) {
	stats := DecodeStats{}
	if err := t.requireColumns(ColSimLatCyclic); err != nil {
		return nil, stats, err
	}

	out := make([]float64, len(t.Rows))
	for i,r := range t.Rows {
		stats.Rows++
		out[i] = ft.SimLatCyclicPercentToDegrees(r.floatVal(ColSimLatCyclic, &stats.BadValues))
	}

	return out, stats, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
