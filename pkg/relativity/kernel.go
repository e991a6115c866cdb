// Package relativity provides the closed-form special-relativity formulas
// shared by every panel of the visualizer: Lorentz factor, Lorentz
// transforms, relativistic velocity addition, and the relativistic Doppler
// factor. All functions work in natural units (c = 1) and are pure.
//
// Error policy: out-of-range velocities never panic and never produce NaN
// in a result a caller would display. |v| >= 1 saturates to the sentinel
// +Inf Lorentz factor, which downstream code treats as "maximal shear".
package relativity

import "math"

// SpeedOfLight is c in meters per second, used only for SI-mode display
// conversion. The kernel itself always works with v as a fraction of c.
const SpeedOfLight = 299792458.0

// saturationEpsilon bounds the velocity-addition denominator away from a
// division blow-up when v1*v2 approaches -1.
const saturationEpsilon = 1e-12

// LorentzFactor returns gamma = 1/sqrt(1-v^2) for a velocity given as a
// fraction of c. For |v| >= 1 it returns +Inf rather than NaN, so callers
// can render the degenerate case without guarding.
func LorentzFactor(v float64) float64 {
	s := 1 - v*v
	if s <= 0 {
		return math.Inf(1)
	}
	return 1 / math.Sqrt(s)
}

// LorentzTransform maps an event (t, x) in one frame to (t', x') in a frame
// moving at velocity v along the x axis:
//
//	t' = gamma (t - v x)
//	x' = gamma (x - v t)
//
// The inverse transform is the same call with -v.
func LorentzTransform(t, x, v float64) (tp, xp float64) {
	g := LorentzFactor(v)
	return g * (t - v*x), g * (x - v*t)
}

// AddVelocities composes two collinear velocities relativistically:
// (v1+v2)/(1+v1*v2). When the denominator magnitude drops below epsilon
// the result saturates to sign(v1+v2) instead of blowing up, so the sum
// never leaves [-1, 1] for inputs in (-1, 1).
func AddVelocities(v1, v2 float64) float64 {
	den := 1 + v1*v2
	if math.Abs(den) < saturationEpsilon {
		if v1+v2 < 0 {
			return -1
		}
		return 1
	}
	sum := (v1 + v2) / den
	// Floating-point composition of two subluminal speeds can land a hair
	// outside the open interval; clamp so callers never see |v| > 1.
	if sum > 1 {
		return 1
	}
	if sum < -1 {
		return -1
	}
	return sum
}

// DopplerFactor returns f_observed / f_emitted = sqrt((1+v)/(1-v)) for a
// source approaching at velocity v. Defined for v in (-1, 1); v >= 1
// returns +Inf and v <= -1 returns 0, matching the saturation policy.
func DopplerFactor(v float64) float64 {
	if v >= 1 {
		return math.Inf(1)
	}
	if v <= -1 {
		return 0
	}
	return math.Sqrt((1 + v) / (1 - v))
}

// TimeDilation returns the proper time elapsed on a clock moving at
// velocity v while coordinate time dt passes: dt/gamma.
func TimeDilation(dt, v float64) float64 {
	g := LorentzFactor(v)
	if math.IsInf(g, 1) {
		return 0
	}
	return dt / g
}

// LengthContraction returns the observed length of an object of proper
// length l moving at velocity v: l/gamma.
func LengthContraction(l, v float64) float64 {
	g := LorentzFactor(v)
	if math.IsInf(g, 1) {
		return 0
	}
	return l / g
}

// TwinElapsed returns the coordinate years and traveler years for a
// round trip to a destination lightYears away at cruise velocity v. The
// turnaround is treated as instantaneous; this backs the conceptual (non
// interactive) twin-paradox panel.
func TwinElapsed(lightYears, v float64) (earthYears, travelerYears float64) {
	av := math.Abs(v)
	if av <= 0 {
		return math.Inf(1), math.Inf(1)
	}
	earthYears = 2 * lightYears / av
	travelerYears = TimeDilation(earthYears, v)
	return earthYears, travelerYears
}
