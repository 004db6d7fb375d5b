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

package shipcfg

import (
	"errors"
	"strconv"
	"strings"
)

// ParseDecimal parses a decimal number accepting both comma and dot as the
// decimal separator. Ship templates are filled in on machines with varying
// regional settings; the maritime convention is a dot, but commas show up
// in practice and must parse to the same value.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("shipcfg: cannot parse empty value as decimal")
	}
	return strconv.ParseFloat(strings.Replace(s, ",", ".", -1), 64)
}

// ParseDecimalOrZero is ParseDecimal returning 0 for empty or unparsable
// input.
func ParseDecimalOrZero(s string) float64 {
	v, err := ParseDecimal(s)
	if err != nil {
		return 0
	}
	return v
}
