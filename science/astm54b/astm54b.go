/*
Copyright © 2026 the UllageMaster authors.
This file is part of UllageMaster.

UllageMaster is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

UllageMaster is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with UllageMaster.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package astm54b implements the ASTM Table 54B volume correction factor
// (VCF) for generalized petroleum products, which corrects an observed
// cargo volume to the 15°C reference standard:
//
//	VCF = exp(-α·ΔT·(1 + 0.8·α·ΔT))
//
// where α is the thermal expansion coefficient and ΔT the difference
// between the observed temperature and 15°C. α is determined from the
// product's density at 15°C through empirical coefficient bands.
package astm54b

import (
	"math"

	"github.com/ullagemaster/gauging/density"
)

// band maps a closed density interval [min, max] (kg/m³ at 15°C) to the
// empirical coefficients K0 and K1 of its product class.
type band struct {
	min, max float64
	k0, k1   float64
}

// Coefficient bands, scanned in order. The gap between the first two bands
// is the transition zone, which uses its own formula.
var bands = []band{
	{0, 770, 346.42278, 0.43884},   // light products (gasolines)
	{778, 839, 594.5418, 0},        // kerosene and jet fuel
	{839, 9999, 186.9696, 0.48618}, // heavy products (fuel oils)
}

// Transition zone constants. Strictly inside (770, 778) kg/m³ a dedicated
// formula smooths the change between the light and medium product bands.
const (
	transitionLo = 770.0
	transitionHi = 778.0
	transitionA  = -0.0033612
	transitionB  = 2680.32
)

// Alpha returns the thermal expansion coefficient for a product with the
// given density at 15°C in kg/m³. Densities outside all bands fall back to
// the heavy-product coefficients rather than failing; an out-of-band
// density is a data problem best surfaced in the resulting numbers, not a
// reason to abort a reading.
func Alpha(density15 float64) float64 {
	if density15 > transitionLo && density15 < transitionHi {
		return transitionA + transitionB/(density15*density15)
	}
	for _, b := range bands {
		if density15 >= b.min && density15 <= b.max {
			return (b.k0 + b.k1*density15) / (density15 * density15)
		}
	}
	heavy := bands[len(bands)-1]
	return (heavy.k0 + heavy.k1*density15) / (density15 * density15)
}

// VCF returns the Table 54B volume correction factor for the given
// observed temperature in °C and density at 15°C. The density may be
// supplied in kg/m³ or g/cm³; values classified as g/cm³ are scaled to
// kg/m³ first. At exactly 15°C the result is exactly 1 for any density.
func VCF(tempC, density15 float64) float64 {
	if density.Classify(density15) == density.GCm3 {
		density15 *= 1000
	}
	deltaT := tempC - 15.0
	alpha := Alpha(density15)
	exponent := -alpha * deltaT * (1 + 0.8*alpha*deltaT)
	return math.Exp(exponent)
}

// DensityAtTemperature returns the product density at the given
// temperature, derived from its density at 15°C. Density varies inversely
// with the volume correction.
func DensityAtTemperature(density15, tempC float64) float64 {
	return density15 / VCF(tempC, density15)
}
