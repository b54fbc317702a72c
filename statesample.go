package flighttest

import (
	"fmt"
	"math"

	"github.com/skypies/geo"
)

// StateSample is one row of the INS state log; it locates the aircraft in space and time,
// along with its attitude.
type StateSample struct {
	HumanTimestamp string    // As exported, e.g. "2025-10-13 15:40:21.123"
	TimeOfDay                // Embedded; derived from HumanTimestamp
	UnixTime       int64
	Microseconds   int64

	geo.Latlong              // Embedded type, so we can call all the geo stuff directly on samples

	HeightM        float64   // Ellipsoid height
	VelNorthMS     float64
	VelEastMS      float64
	VelDownMS      float64   // Positive is descending

	AccelX, AccelY, AccelZ float64 // m/s/s
	GForce         float64

	Roll           float64   // degrees
	Pitch          float64   // degrees
	Heading        float64   // [0.0, 360.0) degrees

	AngVelX, AngVelY, AngVelZ float64 // degrees/s
}

func (s StateSample)String() string {
	return fmt.Sprintf("[%s] %s %.0fft, %.0ffpm, %.1fm/s, %.0fdeg", s.TimeOfDay, s.Latlong,
		s.HeightFeet(), s.VerticalSpeedFPM(), s.GroundSpeedMS(), s.Heading)
}

func (s StateSample)VerticalSpeedFPM() float64 { return VelocityDownToVerticalSpeedFPM(s.VelDownMS) }
func (s StateSample)HeightFeet() float64 { return HeightMetersToFeet(s.HeightM) }
func (s StateSample)GroundSpeedMS() float64 {
	return math.Sqrt(s.VelEastMS*s.VelEastMS + s.VelNorthMS*s.VelNorthMS)
}

// The series a state log can be plotted as. The keys are what the command line accepts.
var StateSeriesNames = map[string]string{
	"vs":          "Vertical speed (ft/min)",
	"height":      "Height (ft)",
	"heading":     "Heading (degrees)",
	"roll_state":  "Roll (degrees)",
	"pitch_state": "Pitch (degrees)",
	"groundspeed": "Ground speed (m/s)",
	"gforce":      "G Force (g)",
	"latitude":    "Latitude (degrees)",
	"longitude":   "Longitude (degrees)",
}

func (s StateSample)Value(series string) (float64, error) {
	switch series {
	case "vs":          return s.VerticalSpeedFPM(), nil
	case "height":      return s.HeightFeet(), nil
	case "heading":     return s.Heading, nil
	case "roll_state":  return s.Roll, nil
	case "pitch_state": return s.Pitch, nil
	case "groundspeed": return s.GroundSpeedMS(), nil
	case "gforce":      return s.GForce, nil
	case "latitude":    return s.Lat, nil
	case "longitude":   return s.Long, nil
	}
	return 0, fmt.Errorf("state series '%s' not known", series)
}
