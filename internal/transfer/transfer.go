// Package transfer implements the scalar sRGB transfer functions.
package transfer

import "math"

// LinearToSRGB converts a linear component to sRGB (OETF).
// Formula: if l < 0.0031308: max(l,0)*12.92; else: 1.055*pow(l, 1/2.4)-0.055
//
// Sub-black values in the small branch clamp to zero before scaling. The
// large branch is not clamped: out-of-range inputs propagate as computed.
func LinearToSRGB(l float32) float32 {
	if l < 0.0031308 {
		if l < 0 {
			return 0
		}
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// SRGBToLinear converts an sRGB component to linear (EOTF).
// Formula: if s < 0.04045: max(s,0)/12.92; else: pow((s+0.055)/1.055, 2.4)
//
// Clamping behavior matches LinearToSRGB: small-branch values below zero
// clamp to zero, the large branch is left as computed.
func SRGBToLinear(s float32) float32 {
	if s < 0.04045 {
		if s < 0 {
			return 0
		}
		return s / 12.92
	}
	return float32(math.Pow(float64(s+0.055)/1.055, 2.4))
}
