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

import "github.com/ullagemaster/gauging/interp"

// Tank is a cargo tank together with its calibration data. The tables are
// immutable ship configuration owned by the caller; the calculation
// pipeline only reads them.
//
// Units: the ullage table maps ullage in centimeters to volume in m³; the
// trim table is keyed by ullage in millimeters and trim in meters, with
// corrections in millimeters; the thermal table maps temperature in °C to
// a dimensionless correction factor.
type Tank struct {
	ID       string
	Name     string
	Capacity float64 // m³

	Ullage  *interp.CalibrationTable
	Trim    *interp.TrimTable
	Thermal *interp.CalibrationTable
}

// HasUllageTable reports whether an ullage calibration table is loaded.
func (t *Tank) HasUllageTable() bool {
	return t.Ullage != nil && t.Ullage.Len() > 0
}

// HasTrimTable reports whether a trim correction table is loaded.
func (t *Tank) HasTrimTable() bool {
	return t.Trim != nil && t.Trim.Len() > 0
}

// HasThermalTable reports whether a thermal correction table is loaded.
func (t *Tank) HasThermalTable() bool {
	return t.Thermal != nil && t.Thermal.Len() > 0
}

// MinUllage returns the smallest ullage in the calibration table, in cm.
func (t *Tank) MinUllage() float64 {
	if !t.HasUllageTable() {
		return 0
	}
	return t.Ullage.MinX()
}

// MaxUllage returns the largest ullage in the calibration table, in cm.
func (t *Tank) MaxUllage() float64 {
	if !t.HasUllageTable() {
		return 0
	}
	return t.Ullage.MaxX()
}

// MaxVolume returns the largest tabulated volume in m³ (the volume at
// minimum ullage), or the nominal capacity if no table is loaded.
func (t *Tank) MaxVolume() float64 {
	if !t.HasUllageTable() {
		return t.Capacity
	}
	return t.Ullage.MaxY()
}
