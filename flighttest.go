// This package contains the types for flight-test telemetry review. No file or plotting imports.
package flighttest

import "time"

const(
	// Nominal sample rates of the two continuous logs. The maneuver log is sparse, and
	// hand-annotated.
	StateSampleRateHz   = 200
	ControlSampleRateHz = 50

	StateSamplePeriod   = time.Second / StateSampleRateHz
	ControlSamplePeriod = time.Second / ControlSampleRateHz
)
