package flighttest

import(
	"fmt"
	"math"
)

// {{{ constants

const(
	// The control positions are measured with string potentiometers into a DI-2008 DAQ.
	StringPotFullScaleMM    = 1270.0
	StringPotFullScaleVolts = 15.0

	// Distance from the cyclic fulcrum to the string pot attachment, roughly where the
	// pilot's hand sits.
	DefaultCyclicArmMM = 183.0 + 60.0
	LegacyCyclicArmMM  = 160.0 // what the first converter used; keep for old plots

	MetersPerSecondToFeetPerMinute = 196.85
	MetersToFeet                   = 3.281

	// The simulator exports lateral cyclic as a percentage of travel; these are the
	// stops, in radians, either side of center.
	SimLatCyclicPositiveStopRad = 0.34958
	SimLatCyclicNegativeStopRad = 0.34497
)

// }}}
// {{{ Calibration

// Calibration holds the constants used to turn DAQ voltages into control angles.
type Calibration struct {
	PotFullScaleMM    float64 `yaml:"pot_full_scale_mm"`
	PotFullScaleVolts float64 `yaml:"pot_full_scale_volts"`
	CyclicArmMM       float64 `yaml:"cyclic_arm_mm"`
}

func DefaultCalibration() Calibration {
	return Calibration{
		PotFullScaleMM: StringPotFullScaleMM,
		PotFullScaleVolts: StringPotFullScaleVolts,
		CyclicArmMM: DefaultCyclicArmMM,
	}
}

func (c Calibration)String() string {
	return fmt.Sprintf("pot=%.0fmm/%.0fV arm=%.0fmm", c.PotFullScaleMM, c.PotFullScaleVolts,
		c.CyclicArmMM)
}

func (c Calibration)Validate() error {
	if c.PotFullScaleVolts <= 0 {
		return fmt.Errorf("calibration: pot full scale volts must be >0 (got %f)", c.PotFullScaleVolts)
	} else if c.PotFullScaleMM <= 0 {
		return fmt.Errorf("calibration: pot full scale mm must be >0 (got %f)", c.PotFullScaleMM)
	} else if c.CyclicArmMM <= 0 {
		return fmt.Errorf("calibration: cyclic arm must be >0 (got %f)", c.CyclicArmMM)
	}
	return nil
}

// VoltsToMM converts a string pot voltage into the extension of the string, in mm.
func (c Calibration)VoltsToMM(volts float64) float64 {
	return c.PotFullScaleMM * (volts / c.PotFullScaleVolts)
}

// DistanceToDegrees converts a string pot extension into a cyclic deflection, relative to
// the reference extension y0. The formula is tan(), not atan(), so that the numbers match
// all the plots and extracts produced so far; the two agree to within 1% below 10 degrees.
func (c Calibration)DistanceToDegrees(y, y0 float64) float64 {
	return Degrees(math.Tan((y - y0) / c.CyclicArmMM))
}

func (c Calibration)VoltsToDegrees(volts, refVolts float64) float64 {
	return c.DistanceToDegrees(c.VoltsToMM(volts), c.VoltsToMM(refVolts))
}

// }}}
// {{{ scalar conversions

func Degrees(rad float64) float64 { return rad * 180.0 / math.Pi }

func VelocityDownToVerticalSpeedFPM(vDownMS float64) float64 {
	return -1.0 * vDownMS * MetersPerSecondToFeetPerMinute
}

func HeightMetersToFeet(m float64) float64 { return m * MetersToFeet }

// SimLatCyclicPercentToRadians maps the simulator's [0,100] lateral cyclic onto its
// physical range of travel.
func SimLatCyclicPercentToRadians(pct float64) float64 {
	span := SimLatCyclicPositiveStopRad + SimLatCyclicNegativeStopRad
	return (span / 100.0) * pct - SimLatCyclicNegativeStopRad
}

func SimLatCyclicPercentToDegrees(pct float64) float64 {
	return Degrees(SimLatCyclicPercentToRadians(pct))
}

// }}}
// {{{ ControlLimits

// Limit is a pair of reference lines drawn across a control's plot.
type Limit struct {
	Min, Max float64
}

// ControlLimits are the expected travel of each control, in degrees.
var ControlLimits = map[string]Limit{
	"Pitch":      {-15, 15},
	"Roll":       {-15, 15},
	"Collective": {0, 30},
	"Pedal":      {-20, 15},
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
