package report

// All reports share this same options struct. Some options apply to all reports, some
// are interpreted creatively by others, and some only apply to one kind of report.

import(
	"fmt"
	"strings"

	ft "github.com/skypies/flighttest"
)

type Options struct {
	Name               string

	OutputDir          string   // Where reports write their files
	Block              string   // Test block label, used in filenames, e.g. "BlockA"
	Pilots           []string   // If non-empty, only these pilots

	Calibration        ft.Calibration
	Maneuvers        []string   // If non-empty, only these maneuvers
	SmoothingWindow    int      // Moving average width, in samples; 1 means none

	ReportLogLevel     ReportLogLevel
}

func DefaultOptions() Options {
	return Options{
		OutputDir: ".",
		Block: "BlockA",
		Calibration: ft.DefaultCalibration(),
		SmoothingWindow: 1,
		ReportLogLevel: INFO,
	}
}

func (o Options)Validate() error {
	if o.Name == "" {
		return fmt.Errorf("no report specified")
	} else if o.SmoothingWindow < 1 {
		return fmt.Errorf("smoothing window must be >=1 (got %d)", o.SmoothingWindow)
	}
	return o.Calibration.Validate()
}

// WantsManeuver applies the maneuver name filter; names match without regard to case.
func (o Options)WantsManeuver(name string) bool {
	if len(o.Maneuvers) == 0 { return true }
	for _,m := range o.Maneuvers {
		if strings.EqualFold(strings.TrimSpace(m), name) { return true }
	}
	return false
}

func (o Options)String() string {
	str := fmt.Sprintf("rep=%s block=%s out=%s cal={%s}", o.Name, o.Block, o.OutputDir, o.Calibration)
	if len(o.Pilots) > 0 { str += " pilots=" + strings.Join(o.Pilots, ",") }
	if len(o.Maneuvers) > 0 { str += " maneuvers=" + strings.Join(o.Maneuvers, ",") }
	if o.SmoothingWindow > 1 { str += fmt.Sprintf(" smoothing=%d", o.SmoothingWindow) }
	return str
}
