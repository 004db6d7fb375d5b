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

// Package cmd implements the gauge command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ullagemaster/gauging"
)

var (
	configFile string

	// Config holds the global configuration data.
	Config *ConfigData

	log = logrus.New()
)

// RootCmd is the main command.
var RootCmd = &cobra.Command{
	Use:   "gauge",
	Short: "Tanker ullage and cargo quantity calculator.",
	Long: `Converts tank gauging measurements (ullage, temperature, trim) into
          standardized cargo quantities for marine oil cargoes, following the
          ASTM volume correction conventions used in custody transfer.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return Startup(configFile)
	},
}

// Startup reads the configuration file, sets up logging and prints a
// welcome message.
func Startup(configFile string) error {
	var err error
	Config, err = ReadConfigFile(configFile)
	if err != nil {
		return err
	}
	if Config.LogFile != "" {
		w, err := os.OpenFile(Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file %s: %v", Config.LogFile, err)
		}
		log.Out = w
	}

	fmt.Println("\n" +
		"------------------------------------------------\n" +
		"                  Welcome!\n" +
		"        UllageMaster cargo calculator\n" +
		"               Version " + gauging.Version + "\n" +
		"------------------------------------------------")
	return nil
}

func init() {
	RootCmd.AddCommand(versionCmd)

	RootCmd.PersistentFlags().StringVar(&configFile, "config", "./gauge.toml", "configuration file location")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of UllageMaster",

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("UllageMaster v%s\n", gauging.Version)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}
