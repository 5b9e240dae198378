package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/katalvlaran/dispositor/formula"
	"github.com/katalvlaran/dispositor/internal/config"
	"github.com/katalvlaran/dispositor/internal/logging"
	"github.com/katalvlaran/dispositor/internal/render"
)

// app is the state shared by every subcommand once the root has loaded
// configuration.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	log    *zap.Logger
	lang   language.Tag
	calc   *formula.Calculator
	asJSON bool
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "soulformula",
		Short:         "Dispositor graph calculator",
		Long:          "soulformula finds the centers of a chart's dispositor graph and the orbit of every planet around them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return a.init(cfgFile)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .soulformula.yaml)")
	pf.BoolP("verbose", "v", false, "debug logging")
	pf.String("lang", "", "output language (en, ru)")
	pf.BoolVar(&a.asJSON, "json", false, "print the result as JSON")
	_ = a.v.BindPFlag("verbose", pf.Lookup("verbose"))
	_ = a.v.BindPFlag("lang", pf.Lookup("lang"))

	root.AddCommand(newChartCmd(a), newCalcCmd(a), newPlacesCmd(a))

	return root
}

// init reads configuration and builds the logger and calculator.
func (a *app) init(cfgFile string) error {
	if err := config.Init(a.v, cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}
	ref, err := cfg.Reference()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.lang = render.Locale(cfg.Lang)
	a.calc = formula.New(ref)
	a.log.Debug("config loaded",
		zap.String("config", a.v.ConfigFileUsed()),
		zap.String("lang", a.lang.String()),
		zap.Duration("http_timeout", cfg.HTTPTimeout))

	return nil
}

// print writes r as indented JSON or as the localized summary and table.
func (a *app) print(w io.Writer, r *formula.Result) error {
	if a.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	if _, err := fmt.Fprintln(w, render.Summary(r, a.lang)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, render.Table(r, a.lang))

	return err
}
