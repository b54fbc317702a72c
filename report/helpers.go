package report

import(
	"os"
	"path/filepath"
	"regexp"
	"strings"

	ft "github.com/skypies/flighttest"
)

// A few helper functions to make writing report routines a bit less cut-n-pasto

var unsafeFilenameChars = regexp.MustCompile(`[/\\:*?"<>|]`)

// OutputPath places a file inside the output dir, making sure any intermediate dirs exist.
func (r *Report)OutputPath(elem ...string) string {
	path := filepath.Join(append([]string{r.Options.OutputDir}, elem...)...)
	os.MkdirAll(filepath.Dir(path), 0o755)
	return path
}

// AddOutput records that the report wrote a file.
func (r *Report)AddOutput(path string) {
	r.Outputs = append(r.Outputs, path)
	r.I["[Y] Files written"]++
	r.Debugf("wrote %s\n", path)
}

// ManeuverExtractFilename is "<Block>_<pilot>_<maneuver>_controlpos.csv"; the pilot keeps its
// space ("BlockA_pilot 3_Steep Turn Right_controlpos.csv"), so old and new extracts sort
// together.
func (r *Report)ManeuverExtractFilename(pilot ft.PilotId, maneuver string) string {
	name := strings.Join([]string{r.Options.Block, pilot.Key, maneuver, "controlpos.csv"}, "_")
	return unsafeFilenameChars.ReplaceAllString(name, "-")
}

// SessionConverted is the session's control log, converted with the report's calibration.
// The conversion is cached for the lifetime of the report.
func (r *Report)SessionConverted(s *ft.Session) ft.ControlLog {
	key := "converted:" + s.ControlFile
	if l,exists := r.Blobs[key]; exists {
		return l.(ft.ControlLog)
	}
	l := s.Control.Convert(r.Options.Calibration)
	r.Blobs[key] = l
	return l
}
