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
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ullagemaster/gauging"
	"github.com/ullagemaster/gauging/shipcfg"
)

func init() {
	RootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute cargo quantities for the configured voyage",
	Long: `Loads the ship configuration workbook, applies the voyage's gauging
          inputs to each tank and computes observed and standard volumes,
          masses and fill level warnings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run()
	},
}

// Run computes every configured tank reading and logs the results.
func Run() error {
	if Config.ShipTemplate == "" {
		return fmt.Errorf("you need to specify the ship configuration workbook in the " +
			"'ShipTemplate' configuration variable")
	}
	parser := &shipcfg.Parser{Log: log}
	ship, err := parser.ParseTemplate(Config.ShipTemplate)
	if err != nil {
		return err
	}

	voyage := gauging.NewVoyage(Config.Voyage.Number)
	voyage.Port = Config.Voyage.Port
	voyage.Terminal = Config.Voyage.Terminal
	voyage.VEF = Config.VEF
	voyage.Drafts = gauging.DraftReadings{Aft: Config.DraftAft, Fwd: Config.DraftForward}

	for _, rc := range Config.Readings {
		r := voyage.Reading(rc.Tank)
		r.Parcel = rc.Parcel
		r.Grade = rc.Grade
		if rc.Ullage != nil {
			r.SetUllage(rc.Ullage)
		}
		if rc.FillPercent != nil {
			r.SetFillPercent(rc.FillPercent)
		}
		r.SetTemperature(rc.Temperature)
		r.SetDensityVac(rc.DensityVac)
		r.SetBLFigure(rc.BLFigure)
	}

	trim := voyage.Drafts.Trim()
	log.WithFields(logrus.Fields{
		"voyage": voyage.Number,
		"trim_m": trim,
		"vef":    voyage.VEF,
	}).Info("computing voyage")

	for _, tc := range Config.Tanks {
		tank := ship.Tank(tc.ID, tc.Name, tc.Capacity)
		r := voyage.Reading(tc.ID)
		if err := gauging.RecomputeVEF(r, tank, trim, voyage.VEF); err != nil {
			log.WithFields(logrus.Fields{"tank": tc.ID, "error": err}).
				Warn("tank not computed")
			continue
		}
		ullage, _ := r.Ullage()
		fill, _ := r.FillPercent()
		log.WithFields(logrus.Fields{
			"tank":      tc.ID,
			"ullage_cm": ullage,
			"tov_m3":    r.TOV,
			"gov_m3":    r.GOV,
			"vcf":       r.VCF,
			"gsv_m3":    r.GSV,
			"mt_air":    r.MTAir,
			"mt_vac":    r.MTVac,
			"fill_pct":  fill,
			"warning":   r.Warning.String(),
		}).Info("tank computed")
	}

	voyage.CalculateTotals()
	log.WithFields(logrus.Fields{
		"total_gsv_m3": voyage.TotalGSV,
		"total_mt_air": voyage.TotalMTAir,
	}).Info("voyage totals")
	return nil
}
