// Package config loads breachpath settings from defaults, an optional YAML
// file and BREACHPATH_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/katalvlaran/breachpath/grid"
	"github.com/katalvlaran/breachpath/logging"
	"github.com/katalvlaran/breachpath/render"
)

// EnvPrefix prefixes every environment override, e.g. BREACHPATH_SOLVER_BUFFER_SIZE.
const EnvPrefix = "BREACHPATH"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds application configuration.
type Config struct {
	Solver   SolverConfig `mapstructure:"solver"`
	Alphabet []string     `mapstructure:"alphabet"`
	Log      LogConfig    `mapstructure:"log"`
	Render   RenderConfig `mapstructure:"render"`
}

// SolverConfig holds search settings.
type SolverConfig struct {
	BufferSize int           `mapstructure:"buffer_size"`
	TimeLimit  time.Duration `mapstructure:"time_limit"`
	Workers    int           `mapstructure:"workers"`
	PreCheck   bool          `mapstructure:"precheck"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Journal bool   `mapstructure:"journal"`
}

// RenderConfig holds presentation settings.
type RenderConfig struct {
	Style string `mapstructure:"style"`
}

// New returns a viper instance with defaults and env overrides installed.
func New() *viper.Viper {
	v := viper.New()

	// default values
	v.SetDefault("solver.buffer_size", 8)
	v.SetDefault("solver.time_limit", time.Duration(0))
	v.SetDefault("solver.workers", runtime.GOMAXPROCS(0))
	v.SetDefault("solver.precheck", true)
	v.SetDefault("alphabet", grid.DefaultAlphabet.Strings())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.journal", false)
	v.SetDefault("render.style", render.Plain.String())

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// Load reads the config file into v and returns the validated Config.
//
// path, when empty, falls back to $BREACHPATH_CONFIG and then to
// $HOME/.config/breachpath/config.yaml. Only an explicitly named file is
// required to exist.
func Load(v *viper.Viper, path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "breachpath"))
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports every out-of-range setting at once.
func (c Config) Validate() error {
	var errs error
	if c.Solver.BufferSize < 1 {
		errs = multierr.Append(errs, fmt.Errorf("%w: solver.buffer_size %d < 1", ErrInvalid, c.Solver.BufferSize))
	}
	if c.Solver.TimeLimit < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: solver.time_limit %v < 0", ErrInvalid, c.Solver.TimeLimit))
	}
	if c.Solver.Workers < 0 {
		errs = multierr.Append(errs, fmt.Errorf("%w: solver.workers %d < 0", ErrInvalid, c.Solver.Workers))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: log.level: %w", ErrInvalid, err))
	}
	if _, err := render.ParseStyle(c.Render.Style); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%w: render.style: %w", ErrInvalid, err))
	}

	return errs
}

// Codes returns the configured alphabet. An empty list yields nil, which
// disables the alphabet check.
func (c Config) Codes() grid.Alphabet {
	if len(c.Alphabet) == 0 {
		return nil
	}

	return grid.Alphabet(grid.ParseCodes(c.Alphabet))
}

// Style returns the parsed render style; Validate has already vetted it.
func (c Config) Style() render.Style {
	s, _ := render.ParseStyle(c.Render.Style)
	return s
}

// Logging returns the logging options derived from c.
func (c Config) Logging() logging.Options {
	return logging.Options{Level: c.Log.Level, File: c.Log.File, Journal: c.Log.Journal}
}
