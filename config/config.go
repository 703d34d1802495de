// Package config loads the runtime tuning knobs for a host embedding the
// num package: the default working scale new values are parsed or computed
// at, and how diagnostics are reported.
package config

import (
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Logging controls how the package's default Diagnostics sink behaves.
type Logging struct {
	Level        string `mapstructure:"level"`
	Format       string `mapstructure:"format"`
	TimestampsOn bool   `mapstructure:"timestamps"`
}

// Config is the full set of tunables a host may supply.
type Config struct {
	DefaultScale int32   `mapstructure:"default_scale"`
	Logging      Logging `mapstructure:"logging"`
}

// Default is the configuration used when a host supplies none.
var Default = Config{
	DefaultScale: 0,
	Logging: Logging{
		Level:        "warn",
		Format:       "console",
		TimestampsOn: true,
	},
}

// Load decodes a TOML document from src into a Config, starting from
// Default so any keys the document omits keep their default value.
func Load(src io.Reader) (Config, error) {
	cfg := Default

	var raw map[string]any
	if err := toml.NewDecoder(src).Decode(&raw); err != nil {
		return Config{}, errors.Wrap(err, "config: decoding toml")
	}

	decoderCfg := mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &cfg,
	}
	decoder, err := mapstructure.NewDecoder(&decoderCfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: building decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, errors.Wrap(err, "config: applying values")
	}

	if cfg.DefaultScale < 0 {
		return Config{}, errors.Errorf("config: default_scale must be >= 0, got %d", cfg.DefaultScale)
	}

	return cfg, nil
}

// NewLogger builds a zerolog.Logger from the Logging settings, writing to
// stderr in console or JSON form depending on Format.
func (l Logging) NewLogger() (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.Logger{}, errors.Wrapf(err, "config: invalid logging level %q", l.Level)
	}

	var writer io.Writer = os.Stderr
	if l.Format == "console" {
		writer = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := zerolog.New(writer).Level(level).With().Logger()
	if l.TimestampsOn {
		logger = logger.With().Timestamp().Logger()
	}
	return logger, nil
}
