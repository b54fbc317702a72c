// Package analysis holds the reports that can be run over flight test sessions. Each one
// registers itself with the report package at init time.
package analysis

import(
	"fmt"
	"strings"

	ft "github.com/skypies/flighttest"
	"github.com/skypies/flighttest/report"
)

func f2(f float64) string { return fmt.Sprintf("%.2f", f) }
func i2(i int) string { return fmt.Sprintf("%d", i) }

// sessionTitle is e.g. "BlockA, pilot 3 (ManeuverLog_Pilot 3)"
func sessionTitle(r *report.Report, s *ft.Session) string {
	return fmt.Sprintf("%s, %s (%s)", r.Options.Block, s.Pilot, s.ManeuverFile)
}

func joinOrNone(l []string) string {
	if len(l) == 0 { return "" }
	return strings.Join(l, " ")
}
