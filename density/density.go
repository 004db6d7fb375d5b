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

// Package density handles cargo density unit conversion: the
// vacuum↔air buoyancy correction used in custody transfer, conversion
// between mass-density units and API gravity, and the shared
// magnitude-based unit classification policy.
//
// Terminals typically report vacuum density (true mass); commercial
// transactions use density in air (apparent weight). Standards define the
// difference as a fixed buoyancy correction.
package density

import (
	"errors"
	"fmt"
	"strings"
)

// Unit is a density unit tag.
type Unit int

const (
	// KgM3 is kilograms per cubic meter.
	KgM3 Unit = iota
	// GCm3 is grams per cubic centimeter, numerically equal to metric
	// tons per cubic meter.
	GCm3
	// API is API gravity, an inverse specific-gravity scale.
	API
)

// ErrUnknownUnit is returned for unit tags a conversion does not support.
var ErrUnknownUnit = errors.New("density: unknown unit")

const (
	// BuoyancyKgM3 is the fixed air buoyancy correction in kg/m³.
	BuoyancyKgM3 = 1.1
	// BuoyancyGCm3 is the same correction in g/cm³.
	BuoyancyGCm3 = 0.0011

	// waterDensity is the density of water at 15°C [kg/m³] used by the
	// API gravity conversion (ASTM D1250).
	waterDensity = 999.012

	// classifyThreshold separates plausible g/cm³ magnitudes from kg/m³
	// magnitudes: petroleum densities are 600–1100 kg/m³ or 0.6–1.1 g/cm³,
	// so any value below 10 can only be g/cm³.
	classifyThreshold = 10.0
)

func (u Unit) String() string {
	switch u {
	case KgM3:
		return "kg/m3"
	case GCm3:
		return "g/cm3"
	case API:
		return "API"
	}
	return fmt.Sprintf("Unit(%d)", int(u))
}

// ParseUnit parses a density unit tag. Both ASCII and superscript
// spellings are accepted ("kg/m3", "kg/m³", "g/cm3", "g/cm³", "api"),
// case-insensitively.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg/m3", "kg/m³":
		return KgM3, nil
	case "g/cm3", "g/cm³":
		return GCm3, nil
	case "api":
		return API, nil
	}
	return 0, fmt.Errorf("density: unit %q: %w", s, ErrUnknownUnit)
}

// Classify reports which mass-density unit a value is plausibly expressed
// in, based on its magnitude. This is the single policy behind every
// unit auto-detection in the calculation pipeline; the threshold lives in
// exactly one place so the heuristics cannot diverge.
func Classify(value float64) Unit {
	if value < classifyThreshold {
		return GCm3
	}
	return KgM3
}

// VacToAir converts vacuum density to density in air by subtracting the
// buoyancy correction for the given unit. Only mass-density units are
// supported; any other tag returns ErrUnknownUnit.
func VacToAir(densityVac float64, unit Unit) (float64, error) {
	switch unit {
	case KgM3:
		return densityVac - BuoyancyKgM3, nil
	case GCm3:
		return densityVac - BuoyancyGCm3, nil
	}
	return 0, fmt.Errorf("density: vac to air in %v: %w", unit, ErrUnknownUnit)
}

// AirToVac converts density in air back to vacuum density.
func AirToVac(densityAir float64, unit Unit) (float64, error) {
	switch unit {
	case KgM3:
		return densityAir + BuoyancyKgM3, nil
	case GCm3:
		return densityAir + BuoyancyGCm3, nil
	}
	return 0, fmt.Errorf("density: air to vac in %v: %w", unit, ErrUnknownUnit)
}

// VacToAirAuto converts vacuum density to density in air, classifying the
// unit from the value's magnitude.
func VacToAirAuto(densityVac float64) float64 {
	d, _ := VacToAir(densityVac, Classify(densityVac))
	return d
}

// Convert converts a density value between units, normalizing through
// kg/m³ as the pivot. The pivot is explicit rather than magnitude-guessed:
// callers of Convert know their units, so no heuristic is involved.
func Convert(value float64, from, to Unit) (float64, error) {
	var kgm3 float64
	switch from {
	case KgM3:
		kgm3 = value
	case GCm3:
		kgm3 = value * 1000
	case API:
		kgm3 = APIToDensity(value)
	default:
		return 0, fmt.Errorf("density: convert from %v: %w", from, ErrUnknownUnit)
	}
	switch to {
	case KgM3:
		return kgm3, nil
	case GCm3:
		return kgm3 / 1000, nil
	case API:
		return DensityToAPI(kgm3), nil
	}
	return 0, fmt.Errorf("density: convert to %v: %w", to, ErrUnknownUnit)
}

// APIToDensity converts API gravity to density at 15°C in kg/m³
// (ASTM D1250): sg = 141.5/(API+131.5), density = sg × 999.012.
func APIToDensity(api float64) float64 {
	sg := 141.5 / (api + 131.5)
	return sg * waterDensity
}

// DensityToAPI converts density at 15°C in kg/m³ to API gravity.
func DensityToAPI(density15 float64) float64 {
	sg := density15 / waterDensity
	return 141.5/sg - 131.5
}
