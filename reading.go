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

// LevelWarning classifies a tank's fill level. It is derived purely from
// the fill percentage and recomputed on every pipeline run.
type LevelWarning int

const (
	// WarnNone means the fill level is within normal operating range.
	WarnNone LevelWarning = iota
	// WarnLow flags levels below 65%, where sloshing becomes a concern.
	WarnLow
	// WarnHigh flags levels above 95%.
	WarnHigh
	// WarnHighHigh flags levels at or above 98%, the critical limit.
	WarnHighHigh
)

// Fill level warning thresholds [percent].
const (
	ThresholdLow      = 65.0
	ThresholdHigh     = 95.0
	ThresholdHighHigh = 98.0
)

func (w LevelWarning) String() string {
	switch w {
	case WarnLow:
		return "low"
	case WarnHigh:
		return "high"
	case WarnHighHigh:
		return "high_high"
	}
	return "normal"
}

// WarnLevel returns the warning classification for a fill percentage.
// The 98% threshold is inclusive; the 95% and 65% thresholds are not.
func WarnLevel(fillPercent float64) LevelWarning {
	switch {
	case fillPercent >= ThresholdHighHigh:
		return WarnHighHigh
	case fillPercent > ThresholdHigh:
		return WarnHigh
	case fillPercent < ThresholdLow:
		return WarnLow
	}
	return WarnNone
}

// authority identifies which primary input currently drives a reading's
// volume computation. Ullage and fill percentage are mutually exclusive
// inputs for the same quantity: entering one invalidates the other.
type authority int

const (
	authorityNone authority = iota
	authorityUllage
	authorityFillPercent
)

// TankReading holds one tank's raw gauging inputs and the quantities
// computed from them. It is created empty per tank per voyage, mutated
// only through its setters and by Recompute, and owned by the caller.
//
// The raw inputs are private so that the ullage⇄fill-percent exclusivity
// cannot be bypassed: exactly one of the two is authoritative at any time,
// and the setters maintain that state. The computed fields are plain
// values overwritten on every recompute.
type TankReading struct {
	TankID       string
	Parcel       string
	Grade        string
	Receiver     string
	ReceiverTank string

	ullage      *float64 // cm; may hold a value derived from fill percent
	fillPercent *float64 // 0–100
	tempCelsius *float64
	densityVac  *float64
	blFigure    *float64 // bill of lading mass [MT air]

	auth authority

	// Computed by Recompute.
	TrimCorrection  float64 // cm
	CorrectedUllage float64 // cm
	TOV             float64 // m³
	ThermCorr       float64
	GOV             float64 // m³
	VCF             float64
	GSV             float64 // m³
	DensityAir      float64
	MTAir           float64
	MTVac           float64
	Discrepancy     float64 // percent vs. bill of lading
	Warning         LevelWarning
}

// NewTankReading returns an empty reading for the given tank.
func NewTankReading(tankID string) *TankReading {
	return &TankReading{TankID: tankID}
}

// SetUllage sets the measured ullage in cm and makes it the authoritative
// input, clearing any entered fill percentage. Passing nil clears the
// ullage; authority then falls back to the fill percentage if one is set.
func (r *TankReading) SetUllage(v *float64) {
	r.ullage = cloneFloat(v)
	switch {
	case v != nil:
		r.fillPercent = nil
		r.auth = authorityUllage
	case r.fillPercent != nil:
		r.auth = authorityFillPercent
	default:
		r.auth = authorityNone
	}
}

// SetFillPercent sets the entered fill percentage and makes it the
// authoritative input, clearing any ullage (including an ullage previously
// derived from a fill percentage). Passing nil clears the fill percentage;
// authority then falls back to the ullage if one is set.
func (r *TankReading) SetFillPercent(v *float64) {
	r.fillPercent = cloneFloat(v)
	switch {
	case v != nil:
		r.ullage = nil
		r.auth = authorityFillPercent
	case r.ullage != nil:
		r.auth = authorityUllage
	default:
		r.auth = authorityNone
	}
}

// SetTemperature sets the cargo temperature in °C, or clears it if nil.
func (r *TankReading) SetTemperature(v *float64) { r.tempCelsius = cloneFloat(v) }

// SetDensityVac sets the vacuum density (kg/m³ or g/cm³, classified by
// magnitude during computation), or clears it if nil.
func (r *TankReading) SetDensityVac(v *float64) { r.densityVac = cloneFloat(v) }

// SetBLFigure sets the bill of lading mass in MT (air), or clears it.
func (r *TankReading) SetBLFigure(v *float64) { r.blFigure = cloneFloat(v) }

// Ullage returns the measured or derived ullage in cm.
func (r *TankReading) Ullage() (float64, bool) { return deref(r.ullage) }

// FillPercent returns the entered or recomputed fill percentage.
func (r *TankReading) FillPercent() (float64, bool) { return deref(r.fillPercent) }

// Temperature returns the cargo temperature in °C.
func (r *TankReading) Temperature() (float64, bool) { return deref(r.tempCelsius) }

// DensityVac returns the vacuum density as entered.
func (r *TankReading) DensityVac() (float64, bool) { return deref(r.densityVac) }

// BLFigure returns the bill of lading mass in MT (air).
func (r *TankReading) BLFigure() (float64, bool) { return deref(r.blFigure) }

// latchDerivedUllage stores an ullage derived from the entered fill
// percentage. Unlike SetUllage it does not transfer authority or clear
// the fill percentage: the derivation happens once, and later recomputes
// reuse the latched value instead of re-deriving it, so an unrelated input
// change (such as trim) can never overwrite the user's entry.
func (r *TankReading) latchDerivedUllage(v float64) {
	r.ullage = &v
}

// setComputedFillPercent stores a fill percentage recomputed from an
// authoritative ullage without transferring authority.
func (r *TankReading) setComputedFillPercent(v float64) {
	r.fillPercent = &v
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
