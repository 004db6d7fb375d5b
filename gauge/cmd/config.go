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

package cmd

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigData holds a gauge configuration: the ship's tanks and tables plus
// the current voyage's inputs.
type ConfigData struct {
	// ShipTemplate is the path to the ship configuration workbook holding
	// the calibration tables. The path can include environment variables.
	ShipTemplate string

	// LogFile is the path to the desired logfile location. It can include
	// environment variables. If empty, logging goes to standard error.
	LogFile string

	// VEF is the vessel experience factor applied to standard volumes.
	// Zero or negative values are treated as 1.
	VEF float64

	// DraftAft and DraftForward are the vessel draft marks in meters.
	// Trim is their difference (positive = stern down).
	DraftAft     float64
	DraftForward float64

	// Voyage identifies the cargo operation.
	Voyage struct {
		Number   string
		Port     string
		Terminal string
	}

	// Tanks lists the ship's cargo tanks. IDs must match the column
	// headers in the ship template workbook.
	Tanks []TankConfig

	// Readings holds the raw gauging inputs for this voyage. Each entry
	// must reference a configured tank. Ullage is in cm; if both Ullage
	// and FillPercent are given, the fill percentage wins (it is the
	// later entry in the ullage⇄fill exclusivity).
	Readings []ReadingConfig
}

// TankConfig describes one cargo tank.
type TankConfig struct {
	ID       string
	Name     string
	Capacity float64 // m³
}

// ReadingConfig holds one tank's raw inputs. Pointer fields distinguish
// "not entered" from zero.
type ReadingConfig struct {
	Tank        string
	Parcel      string
	Grade       string
	Ullage      *float64 // cm
	FillPercent *float64
	Temperature *float64 // °C
	DensityVac  *float64 // kg/m³ or g/cm³
	BLFigure    *float64 // MT air
}

// ReadConfigFile reads and parses a TOML configuration file.
func ReadConfigFile(filename string) (config *ConfigData, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("the configuration file you have specified, %v, does not "+
			"appear to exist. Please check the file name and location and "+
			"try again", filename)
	}
	reader := bufio.NewReader(file)
	bytes, err := ioutil.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("problem reading configuration file: %v", err)
	}

	config = new(ConfigData)
	if _, err = toml.Decode(string(bytes), config); err != nil {
		return nil, fmt.Errorf(
			"there has been an error parsing the configuration file: %v", err)
	}

	config.ShipTemplate = os.ExpandEnv(config.ShipTemplate)
	config.LogFile = os.ExpandEnv(config.LogFile)

	if config.VEF <= 0 {
		config.VEF = 1
	}

	if len(config.Tanks) == 0 {
		return nil, fmt.Errorf("no tanks are configured. Please fill in the " +
			"[[Tanks]] section of the configuration file and try again")
	}
	tankIDs := make(map[string]bool, len(config.Tanks))
	for _, t := range config.Tanks {
		if t.ID == "" {
			return nil, fmt.Errorf("a configured tank is missing its ID")
		}
		if tankIDs[t.ID] {
			return nil, fmt.Errorf("tank %s is configured more than once", t.ID)
		}
		tankIDs[t.ID] = true
	}
	for _, r := range config.Readings {
		if !tankIDs[r.Tank] {
			return nil, fmt.Errorf("reading references tank %q, which is not "+
				"in the [[Tanks]] section", r.Tank)
		}
	}
	return config, nil
}
