package flighttest

import(
	"math"
	"strings"
	"testing"
)

func testControlLog() ControlLog {
	return ControlLog{
		{"15:40:20.980", 2.90, 3.10, 1.0, 4.0},
		{"15:40:21.000", 3.00, 3.00, 1.1, 4.1},
		{"15:40:21.020", 3.10, 2.90, 1.2, 4.2},
		{"15:40:22.000", 3.20, 2.80, 1.3, 4.3},
		{"15:40:23.000", 3.00, 3.00, 1.4, 4.4},
	}
}

func TestControlConvert(t *testing.T) {
	cal := DefaultCalibration()
	raw := testControlLog()
	conv := raw.Convert(cal)

	if len(conv) != len(raw) {
		t.Fatalf("length changed: %d -> %d", len(raw), len(conv))
	}
	if raw[2].Pitch != 3.10 {
		t.Errorf("input log was modified")
	}

	// Index 1 is the reference, so it and its twin at index 4 read zero
	for _,i := range []int{1,4} {
		if conv[i].Pitch != 0 || conv[i].Roll != 0 {
			t.Errorf("[%d] expected zero deflection, got %s", i, conv[i])
		}
	}
	if conv[2].Pitch <= 0 || conv[2].Roll >= 0 {
		t.Errorf("[2] wrong signs: %s", conv[2])
	}
	if math.Abs(conv[2].Pitch + conv[2].Roll) > 1e-9 {
		t.Errorf("[2] expected symmetric deflection: %s", conv[2])
	}
	if conv[3].Collective != 1.3 || conv[3].Pedal != 4.3 {
		t.Errorf("collective/pedal should pass through: %s", conv[3])
	}

	expected := cal.VoltsToDegrees(3.20, 3.00)
	if math.Abs(conv[3].Pitch - expected) > 1e-9 {
		t.Errorf("expected pitch %f, got %f", expected, conv[3].Pitch)
	}
}

func TestControlConvertSingleSample(t *testing.T) {
	conv := ControlLog{{"10:00:00.000", 5.0, 5.0, 0, 0}}.Convert(DefaultCalibration())
	if conv[0].Pitch != 0 {
		t.Errorf("single sample should reference itself, got %f", conv[0].Pitch)
	}
	if len(ControlLog{}.Convert(DefaultCalibration())) != 0 {
		t.Errorf("empty log should convert to empty")
	}
}

func TestControlIndexOfTime(t *testing.T) {
	l := testControlLog()
	tests := []struct{
		Tod   TimeOfDay
		Index int
	}{
		{"15:40:20", 0},
		{"15:40:21", 1}, // first of the two
		{"15:40:23", 4},
		{"15:40:24", -1},
	}
	for _,test := range tests {
		if got := l.IndexOfTime(test.Tod); got != test.Index {
			t.Errorf("%s: expected %d, got %d", test.Tod, test.Index, got)
		}
	}
}

func TestControlSlice(t *testing.T) {
	l := testControlLog()
	if s := l.Slice(1,3); len(s) != 3 || s[0].Time != l[1].Time || s[2].Time != l[3].Time {
		t.Errorf("bad inclusive slice: %v", s)
	}
	if s := l.Slice(3,99); len(s) != 2 {
		t.Errorf("expected clamp to 2 samples, got %d", len(s))
	}
	if s := l.Slice(3,1); len(s) != 0 {
		t.Errorf("inverted range should be empty, got %d", len(s))
	}
}

func TestControlSeconds(t *testing.T) {
	secs := testControlLog().Seconds()
	base := float64(15*3600 + 40*60)
	if math.Abs(secs[2] - (base+21.02)) > 1e-6 {
		t.Errorf("expected %f, got %f", base+21.02, secs[2])
	}
}

func TestControlColumns(t *testing.T) {
	if got := strings.Join(testControlLog().Columns(), ","); got != "Time,Pitch,Roll,Collective,Pedal" {
		t.Errorf("bad columns: %s", got)
	}
}
