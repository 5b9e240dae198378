package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dispositor/ephemeris"
	"github.com/katalvlaran/dispositor/geocode"
)

func newCalcCmd(a *app) *cobra.Command {
	var date, clock, place string

	cmd := &cobra.Command{
		Use:     "calc",
		Short:   "Calculate the formula for a birth date, time and place",
		Example: `  soulformula calc --date 1990-08-01 --time 14:30 --place "Moscow"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if _, err := ephemeris.ParseMoment(date, clock, 0, 0); err != nil {
				return err
			}

			geo := geocode.New(a.cfg.GeocodeURL,
				geocode.WithTimeout(a.cfg.HTTPTimeout),
				geocode.WithUserAgent(a.cfg.UserAgent),
				geocode.WithLogger(a.log))
			coords, err := geo.Lookup(ctx, place)
			if err != nil {
				return fmt.Errorf("calc: %w", err)
			}

			m, err := ephemeris.ParseMoment(date, clock, coords.Lat, coords.Lon)
			if err != nil {
				return err
			}

			eph := ephemeris.NewClient(a.cfg.EphemerisURL,
				ephemeris.WithTimeout(a.cfg.HTTPTimeout),
				ephemeris.WithLogger(a.log))
			signs, err := eph.PlanetSigns(ctx, m)
			if err != nil {
				return fmt.Errorf("calc: %w", err)
			}
			a.log.Info("chart calculated",
				zap.String("place", place),
				zap.Float64("lat", coords.Lat),
				zap.Float64("lon", coords.Lon))

			return a.print(cmd.OutOrStdout(), a.calc.Calculate(signs))
		},
	}

	f := cmd.Flags()
	f.StringVar(&date, "date", "", "birth date, YYYY-MM-DD")
	f.StringVar(&clock, "time", "", "birth time, HH:MM")
	f.StringVar(&place, "place", "", "birth place")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")
	_ = cmd.MarkFlagRequired("place")

	return cmd
}
