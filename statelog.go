package flighttest

import(
	"fmt"
	"math"

	"github.com/skypies/geo"
)

// A StateLog is a slice of StateSamples, in the order the INS wrote them.
type StateLog []StateSample

func (l StateLog)Start() TimeOfDay { return l[0].TimeOfDay }
func (l StateLog)End() TimeOfDay { return l[len(l)-1].TimeOfDay }
func (l StateLog)Times() (s,e TimeOfDay) { return l.Start(), l.End() }

// Duration is in seconds, at the one second resolution of TimeOfDay.
func (l StateLog)DurationSeconds() int {
	if len(l) == 0 { return 0 }
	return l.End().Seconds() - l.Start().Seconds()
}

func (l StateLog)String() string {
	if len(l) == 0 { return "StateLog: empty" }
	str := fmt.Sprintf("StateLog: %d samples, %s-%s", len(l), l.Start(), l.End())
	if len(l) > 1 {
		str += fmt.Sprintf(", %.1fKM", l.PathLengthKM())
	}
	return str
}

// BoundingBox encloses every sample with a non-zero position (the INS writes zeroes until it
// has a fix).
func (l StateLog)BoundingBox() (geo.LatlongBox, bool) {
	var box *geo.LatlongBox
	for _,s := range l {
		if s.Lat == 0 && s.Long == 0 { continue }
		if box == nil {
			tmp := s.BoxTo(s.Latlong)
			box = &tmp
		}
		box.Enclose(s.Latlong)
	}
	if box == nil { return geo.LatlongBox{}, false }
	return *box, true
}

// PathLengthKM sums the distance between consecutive fixes, sampled once per second; at
// 200Hz the per-sample distances are below the noise of the position solution.
func (l StateLog)PathLengthKM() float64 {
	dist := 0.0
	var prev *StateSample
	for i := range l {
		s := l[i]
		if s.Lat == 0 && s.Long == 0 { continue }
		if prev != nil && prev.TimeOfDay == s.TimeOfDay { continue }
		if prev != nil {
			dist += prev.DistKM(s.Latlong)
		}
		prev = &l[i]
	}
	return dist
}

// Series extracts one plottable value from every sample.
func (l StateLog)Series(name string) ([]float64, error) {
	out := make([]float64, len(l))
	for i,s := range l {
		v,err := s.Value(name)
		if err != nil { return nil, err }
		out[i] = v
	}
	return out, nil
}

// Seconds returns the x-axis values for plotting. Samples within the same second are spread
// evenly across it, at the nominal sample rate.
func (l StateLog)Seconds() []float64 {
	out := make([]float64, len(l))
	n := 0
	for i,s := range l {
		if i > 0 && s.TimeOfDay == l[i-1].TimeOfDay {
			n++
		} else {
			n = 0
		}
		out[i] = float64(s.Seconds()) + math.Min(float64(n)/StateSampleRateHz, 0.999)
	}
	return out
}

// TrimToTimes returns the (possibly empty) run of samples within [s,e], inclusive.
func (l StateLog)TrimToTimes(s,e TimeOfDay) StateLog {
	ret := StateLog{}
	for _,sample := range l {
		if sample.TimeOfDay >= s && sample.TimeOfDay <= e {
			ret = append(ret, sample)
		}
	}
	return ret
}
