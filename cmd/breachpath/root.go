package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/breachpath/config"
	"github.com/katalvlaran/breachpath/logging"
)

// Buffer sizes outside this range are accepted but unusual for the game.
const (
	minUsualBuffer = 4
	maxUsualBuffer = 12
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v       *viper.Viper
	cfgPath string

	cfg    config.Config
	log    *slog.Logger
	closer io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: logging.Discard()}

	root := &cobra.Command{
		Use:           "breachpath",
		Short:         "Find the shortest grid path whose codes contain every target sequence",
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default $HOME/.config/breachpath/config.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))

	root.AddCommand(newSolveCmd(a), newCheckCmd(a))

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Logging(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closer = cfg, logger, closer
	a.log.Debug("config loaded", "file", a.v.ConfigFileUsed(), "buffer", cfg.Solver.BufferSize, "workers", cfg.Solver.Workers)

	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.closer == nil {
		return nil
	}

	return a.closer.Close()
}

// warnBuffer logs buffer sizes outside the usual game range.
func (a *app) warnBuffer(label string, size int) {
	if size < minUsualBuffer || size > maxUsualBuffer {
		a.log.Warn("unusual buffer size", "puzzle", label, "buffer", size, "usual_min", minUsualBuffer, "usual_max", maxUsualBuffer)
	}
}
