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
	"math"
	"testing"

	"github.com/ullagemaster/gauging/density"
	"github.com/ullagemaster/gauging/interp"
	"github.com/ullagemaster/gauging/science/astm54b"
)

const testTolerance = 1.e-9

// testTank returns a 1000 m³ tank with a linear calibration table:
// volume = 1000 - 5×ullage[cm], rows every 10 cm from 0 to 100.
func testTank(t *testing.T) *Tank {
	t.Helper()
	var points []interp.Point
	for u := 0.0; u <= 100; u += 10 {
		points = append(points, interp.Point{X: u, Y: 1000 - 5*u})
	}
	table, err := interp.NewCalibrationTable(points)
	if err != nil {
		t.Fatal(err)
	}
	return &Tank{ID: "1P", Name: "No.1 Cargo P", Capacity: 1000, Ullage: table}
}

func TestRecomputeFromUllage(t *testing.T) {
	tank := testTank(t)
	r := NewTankReading(tank.ID)
	r.SetUllage(fptr(20))
	r.SetTemperature(fptr(25))
	r.SetDensityVac(fptr(850))

	if err := Recompute(r, tank, 0); err != nil {
		t.Fatal(err)
	}

	if math.Abs(r.TOV-900) > testTolerance {
		t.Errorf("TOV: got %g, want 900", r.TOV)
	}
	if r.ThermCorr != 1 {
		t.Errorf("thermal correction without table: got %g, want 1", r.ThermCorr)
	}
	if math.Abs(r.GOV-900) > testTolerance {
		t.Errorf("GOV: got %g, want 900", r.GOV)
	}
	fp, ok := r.FillPercent()
	if !ok || math.Abs(fp-90) > testTolerance {
		t.Errorf("fill percent: got %g (set %v), want 90", fp, ok)
	}
	if r.Warning != WarnNone {
		t.Errorf("warning: got %v, want normal", r.Warning)
	}

	wantVCF := astm54b.VCF(25, 850)
	if r.VCF != wantVCF {
		t.Errorf("VCF: got %v, want %v", r.VCF, wantVCF)
	}
	wantGSV := GSV(r.GOV, wantVCF, 1)
	if r.GSV != wantGSV {
		t.Errorf("GSV: got %v, want %v", r.GSV, wantGSV)
	}
	if math.Abs(r.DensityAir-848.9) > testTolerance {
		t.Errorf("air density: got %g, want 848.9", r.DensityAir)
	}
	if math.Abs(r.MTAir-r.GSV*848.9/1000) > testTolerance {
		t.Errorf("MT air: got %g, want %g", r.MTAir, r.GSV*848.9/1000)
	}
	if math.Abs(r.MTVac-r.GSV*0.85) > testTolerance {
		t.Errorf("MT vac: got %g, want %g", r.MTVac, r.GSV*0.85)
	}
}

func TestRecomputeFromFillPercent(t *testing.T) {
	tank := testTank(t)
	r := NewTankReading(tank.ID)
	r.SetFillPercent(fptr(50))

	if err := Recompute(r, tank, 0); err != nil {
		t.Fatal(err)
	}

	// 50% of 1000 m³ is 500 m³, which the table reaches at 100 cm.
	u, ok := r.Ullage()
	if !ok || math.Abs(u-100) > testTolerance {
		t.Errorf("derived ullage: got %g (set %v), want 100", u, ok)
	}
	if math.Abs(r.TOV-500) > testTolerance {
		t.Errorf("TOV: got %g, want 500", r.TOV)
	}
	// The entered percentage stands exactly; no round trip through the
	// table may overwrite it.
	fp, _ := r.FillPercent()
	if fp != 50 {
		t.Errorf("fill percent: got %v, want exactly 50", fp)
	}
	if r.Warning != WarnLow {
		t.Errorf("warning at 50%%: got %v, want low", r.Warning)
	}
}

func TestRecomputeTrimCorrection(t *testing.T) {
	tank := testTank(t)
	// Correction is 5×trim mm at every ullage: +10 mm at 2 m by the stern.
	tank.Trim = interp.NewTrimTable([]interp.Cell{
		{Ullage: 0, Trim: -2, Correction: -10},
		{Ullage: 0, Trim: 2, Correction: 10},
		{Ullage: 1000, Trim: -2, Correction: -10},
		{Ullage: 1000, Trim: 2, Correction: 10},
	})
	r := NewTankReading(tank.ID)
	r.SetUllage(fptr(20))

	if err := Recompute(r, tank, 2); err != nil {
		t.Fatal(err)
	}

	if math.Abs(r.TrimCorrection-1) > testTolerance {
		t.Errorf("trim correction: got %g cm, want 1", r.TrimCorrection)
	}
	if math.Abs(r.CorrectedUllage-21) > testTolerance {
		t.Errorf("corrected ullage: got %g, want 21", r.CorrectedUllage)
	}
	if math.Abs(r.TOV-895) > testTolerance {
		t.Errorf("TOV: got %g, want 895", r.TOV)
	}
	// The measured ullage itself is untouched by the correction.
	if u, _ := r.Ullage(); u != 20 {
		t.Errorf("measured ullage: got %g, want 20", u)
	}
}

func TestRecomputeThermalCorrection(t *testing.T) {
	tank := testTank(t)
	thermal, err := interp.NewCalibrationTable([]interp.Point{
		{X: 0, Y: 0.998},
		{X: 30, Y: 1.002},
	})
	if err != nil {
		t.Fatal(err)
	}
	tank.Thermal = thermal

	r := NewTankReading(tank.ID)
	r.SetUllage(fptr(20))
	r.SetTemperature(fptr(15))
	if err := Recompute(r, tank, 0); err != nil {
		t.Fatal(err)
	}
	if math.Abs(r.ThermCorr-1.0) > testTolerance {
		t.Errorf("thermal factor at 15°C: got %g, want 1", r.ThermCorr)
	}
	if math.Abs(r.GOV-r.TOV*r.ThermCorr) > testTolerance {
		t.Errorf("GOV: got %g, want TOV×factor = %g", r.GOV, r.TOV*r.ThermCorr)
	}

	// Beyond the tabulated range the factor clamps to the endpoint.
	r.SetTemperature(fptr(50))
	if err := Recompute(r, tank, 0); err != nil {
		t.Fatal(err)
	}
	if r.ThermCorr != 1.002 {
		t.Errorf("thermal factor at 50°C: got %g, want clamped 1.002", r.ThermCorr)
	}
}

func TestRecomputeNoInput(t *testing.T) {
	tank := testTank(t)
	r := NewTankReading(tank.ID)
	if err := Recompute(r, tank, 0); err != nil {
		t.Fatal(err)
	}
	if r.TOV != 0 || r.GOV != 0 {
		t.Errorf("empty reading computed volumes: TOV %g, GOV %g", r.TOV, r.GOV)
	}
}

func TestRecomputeMissingUllageTable(t *testing.T) {
	r := NewTankReading("SLOP")
	r.SetUllage(fptr(20))
	if err := Recompute(r, &Tank{ID: "SLOP", Capacity: 100}, 0); !errors.Is(err, ErrNoUllageTable) {
		t.Errorf("tank without table: got %v, want ErrNoUllageTable", err)
	}
	if err := Recompute(r, nil, 0); !errors.Is(err, ErrNoUllageTable) {
		t.Errorf("nil tank: got %v, want ErrNoUllageTable", err)
	}
}

func TestRecomputeOutOfRangeUllage(t *testing.T) {
	tank := testTank(t)
	r := NewTankReading(tank.ID)
	r.SetUllage(fptr(150))

	err := Recompute(r, tank, 0)
	if !errors.Is(err, interp.ErrOutOfRange) {
		t.Fatalf("ullage beyond table: got %v, want ErrOutOfRange", err)
	}
	// Fields computed before the failed lookup keep their values; the
	// volume chain is never reached.
	if r.CorrectedUllage != 150 {
		t.Errorf("corrected ullage: got %g, want 150", r.CorrectedUllage)
	}
	if r.TOV != 0 {
		t.Errorf("TOV after failed lookup: got %g, want 0", r.TOV)
	}
}

func TestRecomputeDiscrepancy(t *testing.T) {
	tank := testTank(t)
	r := NewTankReading(tank.ID)
	r.SetUllage(fptr(20))
	r.SetTemperature(fptr(25))
	r.SetDensityVac(fptr(850))
	r.SetBLFigure(fptr(750))

	if err := Recompute(r, tank, 0); err != nil {
		t.Fatal(err)
	}
	want := (r.MTAir - 750) / 750 * 100
	if math.Abs(r.Discrepancy-want) > testTolerance {
		t.Errorf("discrepancy: got %g, want %g", r.Discrepancy, want)
	}
}

func TestRecomputeVEFScalesGSV(t *testing.T) {
	tank := testTank(t)
	base := NewTankReading(tank.ID)
	base.SetUllage(fptr(20))
	base.SetTemperature(fptr(25))
	base.SetDensityVac(fptr(850))
	if err := RecomputeVEF(base, tank, 0, 1); err != nil {
		t.Fatal(err)
	}

	adj := NewTankReading(tank.ID)
	adj.SetUllage(fptr(20))
	adj.SetTemperature(fptr(25))
	adj.SetDensityVac(fptr(850))
	if err := RecomputeVEF(adj, tank, 0, 1.0025); err != nil {
		t.Fatal(err)
	}

	if math.Abs(adj.GSV-base.GSV*1.0025) > testTolerance {
		t.Errorf("GSV with VEF 1.0025: got %g, want %g", adj.GSV, base.GSV*1.0025)
	}
}

func TestGSVRounding(t *testing.T) {
	// GOV rounds to 3 decimals and VCF to 5 before the multiplication.
	got := GSV(123.4567891, 0.98765449, 1)
	want := 123.457 * 0.98765
	if math.Abs(got-want) > testTolerance {
		t.Errorf("GSV: got %v, want %v", got, want)
	}
}

func TestMass(t *testing.T) {
	// g/cm³ equals t/m³; kg/m³ needs dividing by 1000. Both spellings of
	// the same density give the same mass.
	if m := Mass(100, 0.8); math.Abs(m-80) > testTolerance {
		t.Errorf("Mass(100, 0.8): got %g, want 80", m)
	}
	if m := Mass(100, 800); math.Abs(m-80) > testTolerance {
		t.Errorf("Mass(100, 800): got %g, want 80", m)
	}
	// The classification boundary sits at 10.
	if m := Mass(100, 10); math.Abs(m-1) > testTolerance {
		t.Errorf("Mass(100, 10): got %g, want 1", m)
	}
}

func TestFillPercentHelper(t *testing.T) {
	if p := FillPercent(250, 1000); math.Abs(p-25) > testTolerance {
		t.Errorf("FillPercent(250, 1000): got %g, want 25", p)
	}
	if p := FillPercent(250, 0); p != 0 {
		t.Errorf("zero capacity: got %g, want 0", p)
	}
}

func TestUllageFromPercent(t *testing.T) {
	tank := testTank(t)
	u, err := UllageFromPercent(75, tank.Capacity, tank.Ullage)
	if err != nil {
		t.Fatal(err)
	}
	// 75% of 1000 m³ is 750 m³, reached at 50 cm.
	if math.Abs(u-50) > testTolerance {
		t.Errorf("ullage at 75%%: got %g, want 50", u)
	}
}

func TestMassAndAirDensityAgree(t *testing.T) {
	// The pipeline classifies the density once; computing with 0.85 g/cm³
	// must match computing with 850 kg/m³ field for field.
	tank := testTank(t)
	a := NewTankReading(tank.ID)
	a.SetUllage(fptr(20))
	a.SetTemperature(fptr(25))
	a.SetDensityVac(fptr(850))
	if err := Recompute(a, tank, 0); err != nil {
		t.Fatal(err)
	}

	b := NewTankReading(tank.ID)
	b.SetUllage(fptr(20))
	b.SetTemperature(fptr(25))
	b.SetDensityVac(fptr(0.85))
	if err := Recompute(b, tank, 0); err != nil {
		t.Fatal(err)
	}

	if math.Abs(a.VCF-b.VCF) > testTolerance {
		t.Errorf("VCF: %v (kg/m³) vs %v (g/cm³)", a.VCF, b.VCF)
	}
	if math.Abs(a.MTAir-b.MTAir) > 1e-6 {
		t.Errorf("MT air: %v (kg/m³) vs %v (g/cm³)", a.MTAir, b.MTAir)
	}
	if density.Classify(848.9) != density.KgM3 {
		t.Error("air density in kg/m³ misclassified")
	}
}
