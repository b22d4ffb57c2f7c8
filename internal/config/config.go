package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	ku "github.com/reoring/kontrolluppgift"
	// registers the etree driver by name
	_ "github.com/reoring/kontrolluppgift/source/etreexml"
)

//go:embed config.yaml
var defaultConfig []byte

type (
	DecodeConfig struct {
		Driver          string `yaml:"driver"`
		MaxDepth        int    `yaml:"max_depth"`
		DuplicateFields string `yaml:"duplicate_fields"`
	}

	EncodeConfig struct {
		Driver string `yaml:"driver"`
		Indent string `yaml:"indent"`
	}

	Config struct {
		Language string        `yaml:"language"`
		Logging  LoggingConfig `yaml:"logging"`
		Decode   DecodeConfig  `yaml:"decode"`
		Encode   EncodeConfig  `yaml:"encode"`
	}
)

// Default returns the embedded default configuration.
func Default() []byte { return append([]byte(nil), defaultConfig...) }

func unmarshalConfig(data []byte, cfg *Config) error {
	// only keys declared above are accepted
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to decode configuration data: %w", err)
	}
	return nil
}

// LoadConfiguration reads the configuration file at path, superimposes its
// values on top of the embedded defaults and validates the result. An empty
// path yields the defaults.
func LoadConfiguration(path string) (*Config, error) {
	cfg := &Config{}
	if err := unmarshalConfig(defaultConfig, cfg); err != nil {
		return nil, fmt.Errorf("failed to process default configuration: %w", err)
	}
	if len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshalConfig(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to process config file %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var levels = []string{"none", "normal", "debug"}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var err error
	if !slices.Contains([]string{"en", "sv"}, c.Language) {
		err = multierr.Append(err, fmt.Errorf("language: %q is not en or sv", c.Language))
	}
	if !slices.Contains(levels, c.Logging.ConsoleLogger.Level) {
		err = multierr.Append(err, fmt.Errorf("logging.console.level: %q", c.Logging.ConsoleLogger.Level))
	}
	if !slices.Contains(levels, c.Logging.FileLogger.Level) {
		err = multierr.Append(err, fmt.Errorf("logging.file.level: %q", c.Logging.FileLogger.Level))
	}
	if c.Logging.FileLogger.Level != "none" && c.Logging.FileLogger.Destination == "" {
		err = multierr.Append(err, errors.New("logging.file.path is required when file logging is enabled"))
	}
	if m := c.Logging.FileLogger.Mode; m != "" && m != "append" && m != "overwrite" {
		err = multierr.Append(err, fmt.Errorf("logging.file.mode: %q", m))
	}
	if c.Decode.MaxDepth < 0 {
		err = multierr.Append(err, fmt.Errorf("decode.max_depth: %d is negative", c.Decode.MaxDepth))
	}
	if _, ok := ku.ParseSeverity(c.Decode.DuplicateFields); !ok {
		err = multierr.Append(err, fmt.Errorf("decode.duplicate_fields: %q is not ignore, warn or error", c.Decode.DuplicateFields))
	}
	return err
}

// ParseOpt turns the decode section into decoder options.
func (c *Config) ParseOpt(log *zap.Logger) ku.ParseOpt {
	opt := ku.DefaultParseOpt()
	opt.MaxDepth = c.Decode.MaxDepth
	if sev, ok := ku.ParseSeverity(c.Decode.DuplicateFields); ok {
		opt.Strictness.OnDuplicateField = sev
	}
	opt.Logger = log
	return opt
}

// EncodeOpt turns the encode section into encoder options.
func (c *Config) EncodeOpt(log *zap.Logger) ku.EncodeOpt {
	return ku.EncodeOpt{Indent: c.Encode.Indent, Logger: log}
}

// Drivers resolves the configured decode and encode drivers.
func (c *Config) Drivers() (dec, enc ku.XMLDriver, err error) {
	var ok bool
	if dec, ok = ku.DriverByName(c.Decode.Driver); !ok {
		err = multierr.Append(err, fmt.Errorf("decode.driver: unknown driver %q (have %v)", c.Decode.Driver, ku.DriverNames()))
	}
	if enc, ok = ku.DriverByName(c.Encode.Driver); !ok {
		err = multierr.Append(err, fmt.Errorf("encode.driver: unknown driver %q (have %v)", c.Encode.Driver, ku.DriverNames()))
	}
	return dec, enc, err
}
