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

import "testing"

func fptr(v float64) *float64 { return &v }

func TestUllageClearsFillPercent(t *testing.T) {
	r := NewTankReading("1P")
	r.SetFillPercent(fptr(50))
	r.SetUllage(fptr(120))

	if _, ok := r.FillPercent(); ok {
		t.Error("setting ullage must clear the entered fill percent")
	}
	u, ok := r.Ullage()
	if !ok || u != 120 {
		t.Errorf("ullage: got %g (set %v), want 120", u, ok)
	}
	if r.auth != authorityUllage {
		t.Errorf("authority: got %v, want ullage", r.auth)
	}
}

func TestFillPercentClearsUllage(t *testing.T) {
	r := NewTankReading("1P")
	r.SetUllage(fptr(120))
	r.SetFillPercent(fptr(50))

	if _, ok := r.Ullage(); ok {
		t.Error("setting fill percent must clear the entered ullage")
	}
	if r.auth != authorityFillPercent {
		t.Errorf("authority: got %v, want fill percent", r.auth)
	}
}

func TestClearingInputs(t *testing.T) {
	r := NewTankReading("1P")
	r.SetUllage(fptr(120))
	r.SetUllage(nil)
	if r.auth != authorityNone {
		t.Errorf("authority after clearing only input: got %v, want none", r.auth)
	}

	// Clearing a latched ullage falls back to the fill percent.
	r.SetFillPercent(fptr(50))
	r.latchDerivedUllage(100)
	r.SetUllage(nil)
	if r.auth != authorityFillPercent {
		t.Errorf("authority after clearing latched ullage: got %v, want fill percent", r.auth)
	}
	if fp, ok := r.FillPercent(); !ok || fp != 50 {
		t.Errorf("fill percent: got %g (set %v), want 50", fp, ok)
	}
}

func TestLatchDoesNotTransferAuthority(t *testing.T) {
	r := NewTankReading("1P")
	r.SetFillPercent(fptr(50))
	r.latchDerivedUllage(100)

	if r.auth != authorityFillPercent {
		t.Errorf("authority: got %v, want fill percent after latch", r.auth)
	}
	if u, ok := r.Ullage(); !ok || u != 100 {
		t.Errorf("latched ullage: got %g (set %v), want 100", u, ok)
	}
	if fp, ok := r.FillPercent(); !ok || fp != 50 {
		t.Errorf("fill percent survived latch: got %g (set %v), want 50", fp, ok)
	}
}

func TestSettersCopyValues(t *testing.T) {
	r := NewTankReading("1P")
	v := 25.0
	r.SetTemperature(&v)
	v = 99
	if temp, _ := r.Temperature(); temp != 25 {
		t.Errorf("temperature aliased the caller's variable: got %g", temp)
	}
}

func TestWarnLevelBoundaries(t *testing.T) {
	cases := []struct {
		fill float64
		want LevelWarning
	}{
		{0, WarnLow},
		{64.999, WarnLow},
		{65.0, WarnNone}, // low threshold is exclusive
		{80, WarnNone},
		{95.0, WarnNone}, // high threshold is exclusive
		{95.001, WarnHigh},
		{97.999, WarnHigh},
		{98.0, WarnHighHigh}, // high-high threshold is inclusive
		{105, WarnHighHigh},
	}
	for _, c := range cases {
		if got := WarnLevel(c.fill); got != c.want {
			t.Errorf("WarnLevel(%g): got %v, want %v", c.fill, got, c.want)
		}
	}
}

func TestLevelWarningString(t *testing.T) {
	cases := map[LevelWarning]string{
		WarnNone:     "normal",
		WarnLow:      "low",
		WarnHigh:     "high",
		WarnHighHigh: "high_high",
	}
	for w, want := range cases {
		if w.String() != want {
			t.Errorf("%d.String(): got %q, want %q", int(w), w.String(), want)
		}
	}
}
