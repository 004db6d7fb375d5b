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

package gauging

import (
	"errors"
	"fmt"
	"math"

	"github.com/ullagemaster/gauging/density"
	"github.com/ullagemaster/gauging/interp"
	"github.com/ullagemaster/gauging/science/astm54b"
)

// ErrNoUllageTable is returned when a tank cannot be computed because it
// has no ullage calibration table. The reading is left untouched; this is
// a skip, not a failure of the voyage.
var ErrNoUllageTable = errors.New("gauging: tank has no ullage table")

// Recompute runs the full calculation pipeline for one tank reading with a
// vessel experience factor of 1. See RecomputeVEF.
func Recompute(r *TankReading, tank *Tank, trim float64) error {
	return RecomputeVEF(r, tank, trim, 1)
}

// RecomputeVEF runs the full calculation pipeline for one tank reading,
// mutating the reading in place. trim is the vessel trim in meters (aft
// draft minus forward draft); vef is the vessel experience factor applied
// to GSV (values ≤ 0 are treated as 1).
//
// The steps run in a fixed order because each depends on its
// predecessors: resolve the measured ullage from whichever input is
// authoritative, apply the trim correction, look up the observed volume,
// apply the thermal correction, then the volume correction factor, then
// densities and masses, and finally classify the fill level.
//
// A reading with neither ullage nor fill percentage set computes nothing
// and returns nil. Out-of-range table lookups abort the remaining volume
// steps and are returned to the caller; fields computed before the
// failure keep their values.
func RecomputeVEF(r *TankReading, tank *Tank, trim, vef float64) error {
	if tank == nil || !tank.HasUllageTable() {
		return ErrNoUllageTable
	}
	if vef <= 0 {
		vef = 1
	}

	// Step 1: resolve the measured ullage [cm]. An entered (or previously
	// latched) ullage is used directly. Otherwise the entered fill
	// percentage is converted to a target volume, reverse-interpolated to
	// an ullage, and latched onto the reading so that later recomputes use
	// the same measured value instead of deriving it again.
	var measuredCm float64
	switch {
	case r.ullage != nil:
		measuredCm = *r.ullage
	case r.fillPercent != nil:
		targetVolume := *r.fillPercent / 100 * tank.Capacity
		u, err := tank.Ullage.ReverseInterpolate(targetVolume)
		if err != nil {
			return fmt.Errorf("gauging: tank %s: resolving ullage for %.1f%% fill: %w",
				tank.ID, *r.fillPercent, err)
		}
		measuredCm = u
		r.latchDerivedUllage(u)
	default:
		return nil
	}

	// Step 2: trim tables are keyed in the calibration domain [mm].
	measuredMm := measuredCm * 10

	// Step 3: trim correction [mm], stored in cm for display.
	var trimCorrMm float64
	if tank.HasTrimTable() {
		trimCorrMm = tank.Trim.Interpolate(measuredMm, trim)
	}
	r.TrimCorrection = trimCorrMm / 10

	// Step 4: corrected ullage and total observed volume.
	correctedMm := measuredMm + trimCorrMm
	r.CorrectedUllage = correctedMm / 10
	tov, err := tank.Ullage.Interpolate(r.CorrectedUllage)
	if err != nil {
		return fmt.Errorf("gauging: tank %s: volume at corrected ullage %.1f cm: %w",
			tank.ID, r.CorrectedUllage, err)
	}
	r.TOV = tov

	// Step 5: thermal (steel expansion) correction. The thermal table is
	// clamped at its endpoints rather than range-checked; a temperature
	// slightly outside the tabulated range uses the nearest factor.
	r.ThermCorr = 1.0
	if r.tempCelsius != nil && tank.HasThermalTable() {
		r.ThermCorr = tank.Thermal.InterpolateClamped(*r.tempCelsius)
	}

	// Step 6: gross observed volume.
	r.GOV = r.TOV * r.ThermCorr

	// Step 7: recompute the fill percentage only when the ullage is the
	// authoritative input. When the user entered the fill percentage, the
	// entry stands; a reverse-then-forward round trip through the table is
	// lossy and must not overwrite it.
	if r.auth == authorityUllage {
		r.setComputedFillPercent(FillPercent(r.TOV, tank.Capacity))
	}

	// Steps 8 and 9: standard volume, densities and masses, when the
	// cargo temperature and density are both known.
	if r.tempCelsius != nil && r.densityVac != nil {
		r.VCF = astm54b.VCF(*r.tempCelsius, *r.densityVac)
		r.GSV = GSV(r.GOV, r.VCF, vef)
		r.DensityAir = density.VacToAirAuto(*r.densityVac)
		r.MTAir = Mass(r.GSV, r.DensityAir)
		r.MTVac = Mass(r.GSV, *r.densityVac)
	}

	// Discrepancy against the bill of lading figure, in percent.
	if r.blFigure != nil && *r.blFigure != 0 && r.MTAir != 0 {
		r.Discrepancy = (r.MTAir - *r.blFigure) / *r.blFigure * 100
	}

	// Step 10: fill level classification.
	if r.fillPercent != nil {
		r.Warning = WarnLevel(*r.fillPercent)
	}
	return nil
}

// FillPercent returns the fill percentage for a volume in a tank of the
// given capacity. A non-positive capacity yields 0.
func FillPercent(volume, capacity float64) float64 {
	if capacity <= 0 {
		return 0
	}
	return volume / capacity * 100
}

// UllageFromPercent converts a fill percentage to an ullage in cm by
// reverse lookup of the ullage calibration table.
func UllageFromPercent(percent, capacity float64, table *interp.CalibrationTable) (float64, error) {
	return table.ReverseInterpolate(percent / 100 * capacity)
}

// GSV returns the gross standard volume for a gross observed volume, a
// volume correction factor and a vessel experience factor. GOV is rounded
// to 3 decimals and VCF to 5 before multiplying, matching the precision of
// the figures on a printed ullage report; the product of the rounded
// figures is the contractual quantity.
func GSV(gov, vcf, vef float64) float64 {
	return roundTo(gov, 3) * roundTo(vcf, 5) * vef
}

// Mass returns the mass in metric tons for a volume in m³ and a density
// classified by magnitude: g/cm³ equals t/m³, so the product is already in
// tons; kg/m³ is divided by 1000.
func Mass(volume, d float64) float64 {
	if density.Classify(d) == density.GCm3 {
		return volume * d
	}
	return volume * d / 1000
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
