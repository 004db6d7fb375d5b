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

// DraftReadings holds the vessel's draft marks in meters.
type DraftReadings struct {
	Aft, Fwd float64
}

// Trim returns the vessel trim in meters; positive means stern down.
func (d DraftReadings) Trim() float64 { return d.Aft - d.Fwd }

// Voyage collects the readings of one cargo operation. It is the owner of
// its TankReading records; persistence and reporting of a voyage belong to
// the calling layer.
type Voyage struct {
	Number   string
	Port     string
	Terminal string

	VEF    float64
	Drafts DraftReadings

	readings map[string]*TankReading

	// Totals computed by CalculateTotals.
	TotalGSV   float64
	TotalMTAir float64
}

// NewVoyage returns an empty voyage with a vessel experience factor of 1.
func NewVoyage(number string) *Voyage {
	return &Voyage{
		Number:   number,
		VEF:      1,
		readings: make(map[string]*TankReading),
	}
}

// Reading returns the reading for the given tank, creating an empty one on
// first use.
func (v *Voyage) Reading(tankID string) *TankReading {
	r, ok := v.readings[tankID]
	if !ok {
		r = NewTankReading(tankID)
		v.readings[tankID] = r
	}
	return r
}

// Readings returns all readings keyed by tank ID.
func (v *Voyage) Readings() map[string]*TankReading { return v.readings }

// CalculateTotals sums GSV and mass in air over all tank readings.
func (v *Voyage) CalculateTotals() {
	v.TotalGSV = 0
	v.TotalMTAir = 0
	for _, r := range v.readings {
		v.TotalGSV += r.GSV
		v.TotalMTAir += r.MTAir
	}
}

// DiscrepancyAgainst returns the percentage difference between the voyage
// mass total and a shore figure. A zero shore figure yields 0.
func (v *Voyage) DiscrepancyAgainst(shoreFigure float64) float64 {
	if shoreFigure == 0 {
		return 0
	}
	return (v.TotalMTAir - shoreFigure) / shoreFigure * 100
}
