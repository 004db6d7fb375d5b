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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ullagemaster/gauging/shipcfg"
)

var templateOut string

func init() {
	RootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVarP(&templateOut, "output", "o", "ship_template.xlsx",
		"location to write the blank workbook to")
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write a blank ship configuration workbook",
	Long: `Writes a workbook with one ullage, trim and thermal section per
          configured tank, for the crew to fill in with the ship's
          calibration tables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]string, len(Config.Tanks))
		for i, t := range Config.Tanks {
			ids[i] = t.ID
		}
		if err := shipcfg.WriteTemplate(templateOut, ids); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"output": templateOut, "tanks": len(ids)}).
			Info("template written")
		return nil
	},
}
