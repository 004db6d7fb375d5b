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
	"fmt"

	"github.com/tealeg/xlsx"
)

// Default trim axis headers written to blank templates. Ships with other
// trim ranges edit the headers; the parser accepts any numeric header.
var defaultTrimHeaders = []string{
	"-2.0m", "-1.5m", "-1.0m", "-0.5m", "0.0m", "+0.5m", "+1.0m", "+1.5m", "+2.0m",
}

// Sample ullage rows [mm] pre-filled in blank trim sections.
var sampleTrimUllages = []int{500, 1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000}

// WriteTemplate writes a blank ship configuration workbook for the given
// tank IDs: header pairs in the ullage and thermal sheets and one trim
// section per tank with pre-filled ullage rows, all data cells left for
// the crew to fill in.
func WriteTemplate(path string, tankIDs []string) error {
	f := xlsx.NewFile()

	ullage, err := f.AddSheet(SheetUllage)
	if err != nil {
		return fmt.Errorf("shipcfg: creating %s: %v", SheetUllage, err)
	}
	header := ullage.AddRow()
	for _, id := range tankIDs {
		header.AddCell().SetString(id + suffixUllage)
		header.AddCell().SetString(id + suffixVolume)
	}

	trim, err := f.AddSheet(SheetTrim)
	if err != nil {
		return fmt.Errorf("shipcfg: creating %s: %v", SheetTrim, err)
	}
	for _, id := range tankIDs {
		trim.AddRow().AddCell().SetString("Tank: " + id)
		hdr := trim.AddRow()
		hdr.AddCell().SetString("Ullage_mm")
		for _, h := range defaultTrimHeaders {
			hdr.AddCell().SetString(h)
		}
		for _, u := range sampleTrimUllages {
			trim.AddRow().AddCell().SetInt(u)
		}
		trim.AddRow() // blank separator ends the section
	}

	thermal, err := f.AddSheet(SheetThermal)
	if err != nil {
		return fmt.Errorf("shipcfg: creating %s: %v", SheetThermal, err)
	}
	header = thermal.AddRow()
	for _, id := range tankIDs {
		header.AddCell().SetString(id + suffixTemp)
		header.AddCell().SetString(id + suffixFactor)
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("shipcfg: saving %s: %v", path, err)
	}
	return nil
}
