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

package interp

import "sort"

// Cell is a single trim correction table entry: at the given ullage and
// trim, the stored correction applies. The correction carries the same
// physical unit as the ullage axis (millimeters in ship configuration
// tables).
type Cell struct {
	Ullage, Trim, Correction float64
}

type gridKey struct {
	x, y float64
}

// TrimTable is a sparse two-dimensional correction grid keyed by
// (ullage, trim). The grid need not be dense: cells absent from the
// configuration read as zero.
type TrimTable struct {
	xs, ys []float64 // sorted unique axis values
	cells  map[gridKey]float64
}

// NewTrimTable builds a grid from the given cells. Duplicate (ullage, trim)
// keys keep the last-seen correction. An empty grid is allowed; all lookups
// on it return zero.
func NewTrimTable(cells []Cell) *TrimTable {
	t := &TrimTable{cells: make(map[gridKey]float64, len(cells))}
	xseen := make(map[float64]bool)
	yseen := make(map[float64]bool)
	for _, c := range cells {
		t.cells[gridKey{c.Ullage, c.Trim}] = c.Correction
		if !xseen[c.Ullage] {
			xseen[c.Ullage] = true
			t.xs = append(t.xs, c.Ullage)
		}
		if !yseen[c.Trim] {
			yseen[c.Trim] = true
			t.ys = append(t.ys, c.Trim)
		}
	}
	sort.Float64s(t.xs)
	sort.Float64s(t.ys)
	return t
}

// Len returns the number of stored cells.
func (t *TrimTable) Len() int { return len(t.cells) }

// Interpolate performs a bilinear lookup at (x, y). Unlike the
// one-dimensional lookups, out-of-range queries do not fail: both axes are
// clamped to their observed bounds first, and grid corners missing from the
// sparse data default to zero. The interpolation fractions are defined as
// zero when an axis window is degenerate, so the result is never NaN.
func (t *TrimTable) Interpolate(x, y float64) float64 {
	if len(t.xs) == 0 || len(t.ys) == 0 {
		return 0
	}
	x = clamp(x, t.xs)
	y = clamp(y, t.ys)
	x0, x1 := bracket(t.xs, x)
	y0, y1 := bracket(t.ys, y)

	z00 := t.cells[gridKey{x0, y0}]
	z01 := t.cells[gridKey{x0, y1}]
	z10 := t.cells[gridKey{x1, y0}]
	z11 := t.cells[gridKey{x1, y1}]

	var u, v float64
	if x1 != x0 {
		u = (x - x0) / (x1 - x0)
	}
	if y1 != y0 {
		v = (y - y0) / (y1 - y0)
	}
	return (1-u)*(1-v)*z00 + u*(1-v)*z10 + (1-u)*v*z01 + u*v*z11
}

// clamp limits v to the range of the sorted slice s.
func clamp(v float64, s []float64) float64 {
	if v < s[0] {
		return s[0]
	}
	if v > s[len(s)-1] {
		return s[len(s)-1]
	}
	return v
}

// bracket returns the nearest axis values below and above v. v must
// already be clamped into the axis range. If v exactly matches an axis
// value both bounds are that value.
func bracket(axis []float64, v float64) (lo, hi float64) {
	i := sort.SearchFloat64s(axis, v)
	if i < len(axis) && axis[i] == v {
		return v, v
	}
	return axis[i-1], axis[i]
}
