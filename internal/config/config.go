// Package config loads server settings from the environment
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config is the server configuration. Every field can be set with a
// SHEET_ prefixed environment variable. DataDir overrides the embedded
// reference data when set; OTelEndpoint enables trace export.
type Config struct {
	GRPCPort      int           `env:"GRPC_PORT"      envDefault:"50051"`
	RedisAddr     string        `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"       envDefault:"0"`
	DraftTTL      time.Duration `env:"DRAFT_TTL"      envDefault:"24h"`
	DataDir       string        `env:"DATA_DIR"`
	LogLevel      string        `env:"LOG_LEVEL"      envDefault:"info"`
	LogFormat     string        `env:"LOG_FORMAT"     envDefault:"json"`
	Locale        string        `env:"LOCALE"         envDefault:"en"`
	OTelEndpoint  string        `env:"OTEL_ENDPOINT"`
}

// Prefix is prepended to every variable name
const Prefix = "SHEET_"

// Overrides replaces environment values, typically from command line flags.
// Nil fields leave the environment value alone.
type Overrides struct {
	GRPCPort  *int
	RedisAddr *string
	DataDir   *string
	LogLevel  *string
}

// Load reads and validates the configuration from the process environment
func Load() (*Config, error) {
	return LoadWith(nil, Overrides{})
}

// LoadFrom reads and validates the configuration from the given variables
// instead of the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	return LoadWith(environ, Overrides{})
}

// LoadWith reads the configuration from environ, or the process environment
// when environ is nil, applies the overrides and validates the result.
// Values replaced by an override are never validated.
func LoadWith(environ map[string]string, o Overrides) (*Config, error) {
	opts := env.Options{Prefix: Prefix}
	if environ != nil {
		opts.Environment = environ
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	cfg.apply(o)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) apply(o Overrides) {
	if o.GRPCPort != nil {
		c.GRPCPort = *o.GRPCPort
	}
	if o.RedisAddr != nil {
		c.RedisAddr = *o.RedisAddr
	}
	if o.DataDir != nil {
		c.DataDir = *o.DataDir
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
}

// Validate checks value ranges and enums
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	if c.DraftTTL < 0 {
		vb.Field("DraftTTL", "cannot be negative")
	}
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("LogFormat", strings.ToLower(c.LogFormat), []string{LogFormatJSON, LogFormatText}, vb)
	if _, err := language.Parse(c.Locale); err != nil {
		vb.InvalidField("Locale", err.Error())
	}

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// LocaleTag returns the collation locale, English when unparseable
func (c *Config) LocaleTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}

// NewLogger builds the process logger for the configured level and format
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.LogFormat, LogFormatText) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
