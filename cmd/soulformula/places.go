package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dispositor/geocode"
)

func newPlacesCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "places QUERY",
		Short: "Suggest settlements matching a partial name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geo := geocode.New(a.cfg.GeocodeURL,
				geocode.WithTimeout(a.cfg.HTTPTimeout),
				geocode.WithUserAgent(a.cfg.UserAgent),
				geocode.WithLogger(a.log))
			found, err := geo.Suggest(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return fmt.Errorf("places: %w", err)
			}

			w := cmd.OutOrStdout()
			if a.asJSON {
				if found == nil {
					found = []geocode.Suggestion{}
				}
				return json.NewEncoder(w).Encode(found)
			}
			for _, s := range found {
				fmt.Fprintf(w, "%s\t%.4f, %.4f\t%s\n", s.Name, s.Lat, s.Lon, s.FullName)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "maximum number of suggestions")

	return cmd
}
