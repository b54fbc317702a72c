package report

import(
	"fmt"
	"os"

	"github.com/skypies/flighttest/log"
)

// ReportingContext carries the things a report needs from whoever is running it.
type ReportingContext struct {
	Slog     *log.Logger // may be nil
}

// setupReportingContext checks that the output dir exists (creating it if needed) before any
// report gets a chance to write into it.
func (r *Report)setupReportingContext(lg *log.Logger) error {
	r.ReportingContext.Slog = lg.With("report", r.Name)

	if r.Options.OutputDir != "" {
		if err := os.MkdirAll(r.Options.OutputDir, 0o755); err != nil {
			return fmt.Errorf("report %s: output dir: %w", r.Name, err)
		}
	}

	return nil
}
