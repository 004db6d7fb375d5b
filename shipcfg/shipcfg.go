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

// Package shipcfg reads and writes ship configuration workbooks: Excel
// files holding the calibration tables for every cargo tank on a vessel.
//
// A workbook has up to three sheets. ULLAGE_TABLES (required) holds
// column pairs "<tank>_ULLAGE_mm" / "<tank>_VOLUME_m3". TRIM_CORRECTION
// (optional) holds per-tank sections introduced by a "Tank: <id>" cell,
// followed by an "Ullage_mm" header row whose remaining headers are trim
// values (for example "-2.0m" or "+0.5m") over rows of corrections in mm.
// THERMAL_CORRECTION (optional) holds column pairs "<tank>_TEMP_C" /
// "<tank>_CORR_FACTOR".
//
// Templates record ullage in millimeters; ullage calibration tables are
// converted to the centimeter domain the calculation engine works in, while
// trim tables stay in millimeters, matching how the engine queries them.
package shipcfg

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/tealeg/xlsx"

	"github.com/ullagemaster/gauging"
	"github.com/ullagemaster/gauging/interp"
)

// Sheet names in a ship configuration workbook.
const (
	SheetUllage  = "ULLAGE_TABLES"
	SheetTrim    = "TRIM_CORRECTION"
	SheetThermal = "THERMAL_CORRECTION"
)

// Column header suffixes in the ullage and thermal sheets.
const (
	suffixUllage = "_ULLAGE_mm"
	suffixVolume = "_VOLUME_m3"
	suffixTemp   = "_TEMP_C"
	suffixFactor = "_CORR_FACTOR"
)

// ShipConfig holds the calibration tables parsed from a workbook, keyed by
// tank ID. A tank listed in TankIDs may have no ullage table if its
// columns held no parsable rows.
type ShipConfig struct {
	TankIDs       []string
	UllageTables  map[string]*interp.CalibrationTable
	TrimTables    map[string]*interp.TrimTable
	ThermalTables map[string]*interp.CalibrationTable
}

// Tank assembles a gauging.Tank for the given tank ID with the parsed
// tables attached. The capacity comes from voyage configuration, not from
// the workbook.
func (c *ShipConfig) Tank(id, name string, capacity float64) *gauging.Tank {
	return &gauging.Tank{
		ID:       id,
		Name:     name,
		Capacity: capacity,
		Ullage:   c.UllageTables[id],
		Trim:     c.TrimTables[id],
		Thermal:  c.ThermalTables[id],
	}
}

// Parser reads ship configuration workbooks. The zero value is usable and
// logs to the logrus standard logger.
type Parser struct {
	Log logrus.FieldLogger
}

func (p *Parser) log() logrus.FieldLogger {
	if p.Log != nil {
		return p.Log
	}
	return logrus.StandardLogger()
}

// ParseTemplate reads a completed ship configuration workbook.
func (p *Parser) ParseTemplate(path string) (*ShipConfig, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("shipcfg: opening %s: %v", path, err)
	}
	cfg := &ShipConfig{
		UllageTables:  make(map[string]*interp.CalibrationTable),
		TrimTables:    make(map[string]*interp.TrimTable),
		ThermalTables: make(map[string]*interp.CalibrationTable),
	}

	ullage, ok := f.Sheet[SheetUllage]
	if !ok {
		return nil, fmt.Errorf("shipcfg: %s sheet not found in %s", SheetUllage, path)
	}
	p.parseUllageSheet(ullage, cfg)

	if trim, ok := f.Sheet[SheetTrim]; ok {
		p.parseTrimSheet(trim, cfg)
	}
	if thermal, ok := f.Sheet[SheetThermal]; ok {
		p.parseThermalSheet(thermal, cfg)
	}
	return cfg, nil
}

// parseUllageSheet reads the "<tank>_ULLAGE_mm" / "<tank>_VOLUME_m3"
// column pairs. Ullage values are converted from mm to the engine's cm
// domain. Rows that do not parse are skipped.
func (p *Parser) parseUllageSheet(s *xlsx.Sheet, cfg *ShipConfig) {
	if len(s.Rows) == 0 {
		return
	}
	for col, c := range s.Rows[0].Cells {
		header := strings.TrimSpace(c.Value)
		if !strings.HasSuffix(header, suffixUllage) {
			continue
		}
		tankID := strings.TrimSuffix(header, suffixUllage)
		cfg.TankIDs = append(cfg.TankIDs, tankID)

		var points []interp.Point
		for _, row := range s.Rows[1:] {
			if len(row.Cells) <= col+1 {
				continue
			}
			ullageMm, err1 := ParseDecimal(row.Cells[col].Value)
			volume, err2 := ParseDecimal(row.Cells[col+1].Value)
			if err1 != nil || err2 != nil {
				continue
			}
			points = append(points, interp.Point{X: ullageMm / 10, Y: volume})
		}
		if len(points) == 0 {
			p.log().WithFields(logrus.Fields{"tank": tankID}).
				Warn("shipcfg: ullage columns have no parsable rows")
			continue
		}
		table, err := interp.NewCalibrationTable(points)
		if err != nil {
			p.log().WithFields(logrus.Fields{"tank": tankID, "err": err}).
				Warn("shipcfg: skipping ullage table")
			continue
		}
		cfg.UllageTables[tankID] = table
	}
}

// parseTrimSheet reads the sectioned trim correction layout. Sections for
// the same tank accumulate into one table.
func (p *Parser) parseTrimSheet(s *xlsx.Sheet, cfg *ShipConfig) {
	cellsByTank := make(map[string][]interp.Cell)
	currentTank := ""
	for ri := 0; ri < len(s.Rows); ri++ {
		first := strings.TrimSpace(cellValue(s.Rows[ri], 0))
		if strings.HasPrefix(first, "Tank:") {
			currentTank = strings.TrimSpace(strings.TrimPrefix(first, "Tank:"))
			continue
		}
		if first != "Ullage_mm" {
			continue
		}

		// Trim axis values come from the remaining headers of this row.
		type trimCol struct {
			col  int
			trim float64
		}
		var cols []trimCol
		for ci := 1; ci < len(s.Rows[ri].Cells); ci++ {
			v, err := parseTrimHeader(s.Rows[ri].Cells[ci].Value)
			if err != nil {
				continue
			}
			cols = append(cols, trimCol{ci, v})
		}

		// Data rows follow until the first empty leading cell.
		for ri++; ri < len(s.Rows); ri++ {
			lead := strings.TrimSpace(cellValue(s.Rows[ri], 0))
			if lead == "" {
				break
			}
			ullageMm, err := ParseDecimal(lead)
			if err != nil {
				continue
			}
			for _, tc := range cols {
				raw := cellValue(s.Rows[ri], tc.col)
				corr, err := ParseDecimal(raw)
				if err != nil {
					continue
				}
				cellsByTank[currentTank] = append(cellsByTank[currentTank], interp.Cell{
					Ullage:     ullageMm,
					Trim:       tc.trim,
					Correction: corr,
				})
			}
		}
	}
	for tankID, cells := range cellsByTank {
		if tankID == "" {
			p.log().Warn("shipcfg: trim section without a Tank: header ignored")
			continue
		}
		cfg.TrimTables[tankID] = interp.NewTrimTable(cells)
	}
}

// parseThermalSheet reads the "<tank>_TEMP_C" / "<tank>_CORR_FACTOR"
// column pairs. Factors are rounded to 6 decimals, the precision the
// templates are generated with.
func (p *Parser) parseThermalSheet(s *xlsx.Sheet, cfg *ShipConfig) {
	if len(s.Rows) == 0 {
		return
	}
	for col, c := range s.Rows[0].Cells {
		header := strings.TrimSpace(c.Value)
		if !strings.HasSuffix(header, suffixTemp) {
			continue
		}
		tankID := strings.TrimSuffix(header, suffixTemp)

		var points []interp.Point
		for _, row := range s.Rows[1:] {
			if len(row.Cells) <= col+1 {
				continue
			}
			temp, err1 := ParseDecimal(row.Cells[col].Value)
			factor, err2 := ParseDecimal(row.Cells[col+1].Value)
			if err1 != nil || err2 != nil {
				continue
			}
			points = append(points, interp.Point{X: temp, Y: math.Round(factor*1e6) / 1e6})
		}
		if len(points) == 0 {
			continue
		}
		table, err := interp.NewCalibrationTable(points)
		if err != nil {
			continue
		}
		cfg.ThermalTables[tankID] = table
	}
}

// parseTrimHeader extracts the trim value in meters from a header such as
// "-2.0m", "+0.5m" or "1.5".
func parseTrimHeader(s string) (float64, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Replace(s, "m", "", -1)
	s = strings.Replace(s, "+", "", -1)
	return cast.ToFloat64E(strings.TrimSpace(s))
}

func cellValue(row *xlsx.Row, col int) string {
	if row == nil || col >= len(row.Cells) {
		return ""
	}
	return row.Cells[col].Value
}
