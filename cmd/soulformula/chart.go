package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/dispositor/zodiac"
)

// errIncomplete is returned when a chart lacks planets and partial charts
// were not allowed.
var errIncomplete = errors.New("chart: incomplete")

func newChartCmd(a *app) *cobra.Command {
	var (
		raw     map[string]string
		partial bool
	)

	cmd := &cobra.Command{
		Use:     "chart",
		Short:   "Calculate the formula for given planet signs",
		Example: "  soulformula chart --sign Sun=Leo --sign Moon=Cancer --allow-partial",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			signs, err := zodiac.Resolve(raw)
			if err != nil {
				return err
			}
			if missing := signs.Missing(); len(missing) > 0 && !partial {
				return fmt.Errorf("%w: no sign for %v (use --allow-partial)", errIncomplete, missing)
			}
			a.log.Debug("chart resolved", zap.Int("planets", len(signs)))

			return a.print(cmd.OutOrStdout(), a.calc.Calculate(signs))
		},
	}

	cmd.Flags().StringToStringVar(&raw, "sign", nil, "planet=sign assignment, repeatable")
	cmd.Flags().BoolVar(&partial, "allow-partial", false, "accept charts with missing planets")

	return cmd
}
