package flighttest

import(
	"fmt"
	"strconv"
	"strings"
)

// ControlColumns are the DAQ channels, in the order the DAQ writes them.
var ControlColumns = []string{"Pitch", "Roll", "Collective", "Pedal"}

// ControlSample is one row of the control position log. Until Convert is called the values
// are raw transducer volts.
type ControlSample struct {
	Time        string  // As exported, e.g. "15:40:21.020"
	Pitch       float64
	Roll        float64
	Collective  float64
	Pedal       float64
}

// TimeOfDay is the first eight characters of Time; the DAQ always zero pads.
func (s ControlSample)TimeOfDay() TimeOfDay {
	if len(s.Time) < 8 { return TimeOfDay(s.Time) }
	return TimeOfDay(s.Time[:8])
}

func (s ControlSample)Value(column string) (float64, error) {
	switch column {
	case "Pitch":      return s.Pitch, nil
	case "Roll":       return s.Roll, nil
	case "Collective": return s.Collective, nil
	case "Pedal":      return s.Pedal, nil
	}
	return 0, fmt.Errorf("control column '%s' not known", column)
}

func (s ControlSample)Values() []float64 {
	return []float64{s.Pitch, s.Roll, s.Collective, s.Pedal}
}

func (s ControlSample)String() string {
	return fmt.Sprintf("[%s] P:%.3f R:%.3f C:%.3f Y:%.3f", s.Time, s.Pitch, s.Roll,
		s.Collective, s.Pedal)
}

// A ControlLog is a slice of ControlSamples, in the order the DAQ wrote them.
type ControlLog []ControlSample

func (l ControlLog)String() string {
	if len(l) == 0 { return "ControlLog: empty" }
	return fmt.Sprintf("ControlLog: %d samples, %s-%s", len(l), l[0].TimeOfDay(),
		l[len(l)-1].TimeOfDay())
}

// Convert returns a copy of the log with the cyclic channels (Pitch, Roll) turned into
// degrees of deflection. The zero reference is the sample at index 1 (index 0 is often a
// settling value); a single-sample log references itself. Collective and Pedal pass
// through unchanged.
func (l ControlLog)Convert(cal Calibration) ControlLog {
	out := make(ControlLog, len(l))
	copy(out, l)
	if len(l) == 0 { return out }

	ref := l[0]
	if len(l) > 1 { ref = l[1] }

	for i := range out {
		out[i].Pitch = cal.VoltsToDegrees(l[i].Pitch, ref.Pitch)
		out[i].Roll = cal.VoltsToDegrees(l[i].Roll, ref.Roll)
	}
	return out
}

// IndexOfTime returns the index of the first sample within the given second, or -1.
func (l ControlLog)IndexOfTime(tod TimeOfDay) int {
	for i,s := range l {
		if s.TimeOfDay() == tod { return i }
	}
	return -1
}

// Slice returns samples [start,end], inclusive of both ends. Out of range indices are clamped.
func (l ControlLog)Slice(start, end int) ControlLog {
	if start < 0 { start = 0 }
	if end >= len(l) { end = len(l)-1 }
	if start > end { return ControlLog{} }
	return l[start:end+1]
}

// Columns is the header row of a control log file.
func (l ControlLog)Columns() []string { return append([]string{"Time"}, ControlColumns...) }

func (l ControlLog)Series(column string) ([]float64, error) {
	out := make([]float64, len(l))
	for i,s := range l {
		v,err := s.Value(column)
		if err != nil { return nil, err }
		out[i] = v
	}
	return out, nil
}

// Seconds returns the x-axis values for plotting, seconds since midnight, using the
// fractional part of the DAQ's time where present.
func (l ControlLog)Seconds() []float64 {
	out := make([]float64, len(l))
	for i,s := range l {
		secs := float64(s.TimeOfDay().Seconds())
		if dot := strings.Index(s.Time, "."); dot >= 0 {
			if frac,err := strconv.ParseFloat("0"+s.Time[dot:], 64); err == nil && frac < 1 {
				secs += frac
			}
		}
		out[i] = secs
	}
	return out
}
