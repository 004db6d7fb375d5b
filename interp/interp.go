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

// Package interp provides lookup and interpolation over the tabular
// calibration data used in tank gauging: one-dimensional monotonic tables
// (ullage↔volume, temperature↔correction factor) and sparse two-dimensional
// trim correction grids. The package has no knowledge of physical units;
// callers are responsible for querying tables in the units their data was
// built with.
package interp

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrOutOfRange is returned when a one-dimensional lookup is queried
// outside the range of the table it is performed on.
var ErrOutOfRange = errors.New("interp: query outside table range")

// Point is a single calibration table row.
type Point struct {
	X, Y float64
}

// CalibrationTable is an immutable one-dimensional lookup table with
// strictly increasing keys. It supports forward lookup (X→Y) and reverse
// lookup (Y→X).
type CalibrationTable struct {
	xs, ys []float64 // sorted ascending by x, keys unique

	// permutation of row indices sorted ascending by y, built once so
	// that reverse lookups do not assume the y column is monotonic.
	byY []int
}

// NewCalibrationTable builds a table from the given rows. Rows are sorted
// ascending by X; duplicate keys are resolved by keeping the last-seen
// value for each key, in the order the rows were supplied. An empty input
// is an error.
func NewCalibrationTable(points []Point) (*CalibrationTable, error) {
	if len(points) == 0 {
		return nil, errors.New("interp: calibration table must have at least one row")
	}
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	t := &CalibrationTable{
		xs: make([]float64, 0, len(sorted)),
		ys: make([]float64, 0, len(sorted)),
	}
	for _, p := range sorted {
		if n := len(t.xs); n > 0 && t.xs[n-1] == p.X {
			t.ys[n-1] = p.Y // last-seen value wins
			continue
		}
		t.xs = append(t.xs, p.X)
		t.ys = append(t.ys, p.Y)
	}

	t.byY = make([]int, len(t.xs))
	for i := range t.byY {
		t.byY[i] = i
	}
	sort.SliceStable(t.byY, func(i, j int) bool { return t.ys[t.byY[i]] < t.ys[t.byY[j]] })
	return t, nil
}

// Len returns the number of rows in the table.
func (t *CalibrationTable) Len() int { return len(t.xs) }

// MinX returns the smallest key in the table.
func (t *CalibrationTable) MinX() float64 { return t.xs[0] }

// MaxX returns the largest key in the table.
func (t *CalibrationTable) MaxX() float64 { return t.xs[len(t.xs)-1] }

// MinY returns the smallest value in the table.
func (t *CalibrationTable) MinY() float64 { return floats.Min(t.ys) }

// MaxY returns the largest value in the table.
func (t *CalibrationTable) MaxY() float64 { return floats.Max(t.ys) }

// Interpolate performs a forward (X→Y) linear interpolation. Queries
// outside the table's key range return ErrOutOfRange. A query exactly
// matching a stored key returns that key's stored value with no
// interpolation arithmetic, so re-querying a knot is bit-reproducible.
func (t *CalibrationTable) Interpolate(x float64) (float64, error) {
	if x < t.xs[0] || x > t.xs[len(t.xs)-1] {
		return 0, fmt.Errorf("interp: %g outside table range [%g, %g]: %w",
			x, t.xs[0], t.xs[len(t.xs)-1], ErrOutOfRange)
	}
	i := sort.SearchFloat64s(t.xs, x)
	if i < len(t.xs) && t.xs[i] == x {
		return t.ys[i], nil
	}
	// x is strictly between xs[i-1] and xs[i].
	x0, x1 := t.xs[i-1], t.xs[i]
	y0, y1 := t.ys[i-1], t.ys[i]
	if x1 == x0 {
		return y0, nil
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0), nil
}

// InterpolateClamped is like Interpolate except that out-of-range queries
// are clamped to the nearest table endpoint instead of returning an error.
func (t *CalibrationTable) InterpolateClamped(x float64) float64 {
	if x < t.xs[0] {
		x = t.xs[0]
	} else if x > t.xs[len(t.xs)-1] {
		x = t.xs[len(t.xs)-1]
	}
	y, _ := t.Interpolate(x)
	return y
}

// ReverseInterpolate performs the dual lookup (Y→X): the same algorithm as
// Interpolate with the two columns swapped. The table's value column need
// not be sorted (ullage tables are sorted by ullage, and volume decreases
// with increasing ullage); the search runs over a y-sorted view built at
// construction. Queries outside the value column's range return
// ErrOutOfRange.
func (t *CalibrationTable) ReverseInterpolate(y float64) (float64, error) {
	minY, maxY := floats.Min(t.ys), floats.Max(t.ys)
	if y < minY || y > maxY {
		return 0, fmt.Errorf("interp: %g outside table range [%g, %g]: %w",
			y, minY, maxY, ErrOutOfRange)
	}
	i := sort.Search(len(t.byY), func(i int) bool { return t.ys[t.byY[i]] >= y })
	if i < len(t.byY) && t.ys[t.byY[i]] == y {
		return t.xs[t.byY[i]], nil
	}
	y0, y1 := t.ys[t.byY[i-1]], t.ys[t.byY[i]]
	x0, x1 := t.xs[t.byY[i-1]], t.xs[t.byY[i]]
	if y1 == y0 {
		return x0, nil
	}
	return x0 + (y-y0)*(x1-x0)/(y1-y0), nil
}
