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
	"math"
	"testing"
)

func TestDraftTrim(t *testing.T) {
	d := DraftReadings{Aft: 8.5, Fwd: 7.3}
	if trim := d.Trim(); math.Abs(trim-1.2) > testTolerance {
		t.Errorf("trim: got %g, want 1.2", trim)
	}
}

func TestVoyageReadingCreateOnUse(t *testing.T) {
	v := NewVoyage("2026-07")
	r := v.Reading("1P")
	if r == nil || r.TankID != "1P" {
		t.Fatalf("first access: got %+v", r)
	}
	if v.Reading("1P") != r {
		t.Error("second access returned a different reading")
	}
	if len(v.Readings()) != 1 {
		t.Errorf("readings: got %d, want 1", len(v.Readings()))
	}
	if v.VEF != 1 {
		t.Errorf("default VEF: got %g, want 1", v.VEF)
	}
}

func TestVoyageTotals(t *testing.T) {
	tank := testTank(t)
	v := NewVoyage("2026-07")
	v.Drafts = DraftReadings{Aft: 8.0, Fwd: 8.0}

	for i, tankID := range []string{"1P", "1S"} {
		r := v.Reading(tankID)
		r.SetUllage(fptr(20 + float64(10*i)))
		r.SetTemperature(fptr(25))
		r.SetDensityVac(fptr(850))
		if err := RecomputeVEF(r, tank, v.Drafts.Trim(), v.VEF); err != nil {
			t.Fatal(err)
		}
	}
	v.CalculateTotals()

	wantGSV := v.Reading("1P").GSV + v.Reading("1S").GSV
	if math.Abs(v.TotalGSV-wantGSV) > testTolerance {
		t.Errorf("total GSV: got %g, want %g", v.TotalGSV, wantGSV)
	}
	wantMT := v.Reading("1P").MTAir + v.Reading("1S").MTAir
	if math.Abs(v.TotalMTAir-wantMT) > testTolerance {
		t.Errorf("total MT air: got %g, want %g", v.TotalMTAir, wantMT)
	}

	// Totals are recomputed from scratch, not accumulated.
	v.CalculateTotals()
	if math.Abs(v.TotalGSV-wantGSV) > testTolerance {
		t.Errorf("total GSV after second pass: got %g, want %g", v.TotalGSV, wantGSV)
	}
}

func TestVoyageDiscrepancy(t *testing.T) {
	v := NewVoyage("2026-07")
	v.TotalMTAir = 1010
	if d := v.DiscrepancyAgainst(1000); math.Abs(d-1) > testTolerance {
		t.Errorf("discrepancy: got %g, want 1", d)
	}
	if d := v.DiscrepancyAgainst(0); d != 0 {
		t.Errorf("zero shore figure: got %g, want 0", d)
	}
}
