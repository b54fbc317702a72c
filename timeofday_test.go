package flighttest

import "testing"

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct{
		In      string
		Out     TimeOfDay
		WantErr bool
	}{
		{"09:49:13",      "09:49:13", false},
		{"9:49:13",       "09:49:13", false}, // zero filled
		{" 15:40:21.693", "15:40:21", false}, // fraction dropped
		{"15:40",         "",         true},
		{"ab:cd:ef",      "",         true},
		{"",              "",         true},
	}

	for _,test := range tests {
		got,err := ParseTimeOfDay(test.In)
		if (err != nil) != test.WantErr {
			t.Errorf("'%s' - expected err=%v, got %v", test.In, test.WantErr, err)
		} else if got != test.Out {
			t.Errorf("'%s' - expected %q, got %q", test.In, test.Out, got)
		}
	}
}

func TestTimeOfDayFromHumanTimestamp(t *testing.T) {
	tod,err := TimeOfDayFromHumanTimestamp("2025-10-13 15:40:21.123456")
	if err != nil {
		t.Fatal(err)
	}
	if tod != "15:40:21" {
		t.Errorf("expected 15:40:21, got %s", tod)
	}
	if tod.Seconds() != 15*3600+40*60+21 {
		t.Errorf("bad seconds %d", tod.Seconds())
	}
	if back := TimeOfDayFromSeconds(float64(tod.Seconds())); back != tod {
		t.Errorf("round trip gave %s", back)
	}

	if _,err := TimeOfDayFromHumanTimestamp("2025-10-13"); err == nil {
		t.Errorf("short timestamp should fail")
	}
}
