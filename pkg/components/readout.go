package components

import (
	"fmt"
	"math"
)

// UnitMode selects how numeric readouts are formatted.
type UnitMode int

const (
	// Natural units: c = 1, velocities as plain fractions.
	Natural UnitMode = iota
	// SI units: velocities in m/s, exponential notation with 2 decimals.
	SI
)

// String returns the lowercase mode name used in config files.
func (u UnitMode) String() string {
	if u == SI {
		return "si"
	}
	return "natural"
}

// Toggle flips between natural and SI.
func (u UnitMode) Toggle() UnitMode {
	if u == SI {
		return Natural
	}
	return SI
}

// speedOfLight mirrors the kernel constant; readouts only need it for
// display conversion and components must not depend on the kernel.
const speedOfLight = 299792458.0

// FormatVelocity renders v for display: three decimal places in natural
// units, exponential with two decimals (in m/s) in SI mode. NaN input
// falls back to the defined default of zero.
func FormatVelocity(v float64, mode UnitMode) string {
	if math.IsNaN(v) {
		v = 0
	}
	if mode == SI {
		return fmt.Sprintf("%.2e m/s", v*speedOfLight)
	}
	return fmt.Sprintf("%.3fc", v)
}

// FormatGamma renders the Lorentz factor: two decimal places, exponential
// with two decimals in SI mode, and the infinity glyph for the
// light-speed sentinel so the display never shows Inf or NaN.
func FormatGamma(gamma float64, mode UnitMode) string {
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return "∞"
	}
	if mode == SI {
		return fmt.Sprintf("%.2e", gamma)
	}
	return fmt.Sprintf("%.2f", gamma)
}

// FormatQuantity renders a generic value with a unit suffix, switching to
// exponential form in SI mode or whenever the magnitude is unwieldy.
func FormatQuantity(value float64, unit string, mode UnitMode) string {
	if math.IsNaN(value) {
		value = 0
	}
	if math.IsInf(value, 0) {
		return "∞ " + unit
	}
	if mode == SI || (value != 0 && (math.Abs(value) >= 1e6 || math.Abs(value) < 1e-3)) {
		return fmt.Sprintf("%.2e %s", value, unit)
	}
	return fmt.Sprintf("%.2f %s", value, unit)
}

// Readout renders a labeled value pair like "v = 0.600c" with the value
// colored.
func Readout(label, value, color string) string {
	return Dim(label+" = ") + Colored(color, value)
}
