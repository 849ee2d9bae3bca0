package config_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.LoadFrom(map[string]string{})
	s.Require().NoError(err)

	s.Assert().Equal(50051, cfg.GRPCPort)
	s.Assert().Equal("localhost:6379", cfg.RedisAddr)
	s.Assert().Equal(24*time.Hour, cfg.DraftTTL)
	s.Assert().Empty(cfg.DataDir)
	s.Assert().Equal(slog.LevelInfo, cfg.SlogLevel())
	s.Assert().Equal(language.English, cfg.LocaleTag())
}

func (s *ConfigTestSuite) TestOverrides() {
	cfg, err := config.LoadFrom(map[string]string{
		"SHEET_GRPC_PORT":  "9090",
		"SHEET_REDIS_ADDR": "redis:6379",
		"SHEET_REDIS_DB":   "2",
		"SHEET_DRAFT_TTL":  "90m",
		"SHEET_DATA_DIR":   "/srv/data",
		"SHEET_LOG_LEVEL":  "debug",
		"SHEET_LOG_FORMAT": "text",
		"SHEET_LOCALE":     "sv",
		"GRPC_PORT":        "1",

		"SHEET_OTEL_ENDPOINT": "http://collector:4318",
	})
	s.Require().NoError(err)

	s.Assert().Equal(9090, cfg.GRPCPort)
	s.Assert().Equal("redis:6379", cfg.RedisAddr)
	s.Assert().Equal(2, cfg.RedisDB)
	s.Assert().Equal(90*time.Minute, cfg.DraftTTL)
	s.Assert().Equal("/srv/data", cfg.DataDir)
	s.Assert().Equal(slog.LevelDebug, cfg.SlogLevel())
	s.Assert().Equal(language.Swedish, cfg.LocaleTag())
	s.Assert().Equal("http://collector:4318", cfg.OTelEndpoint)
}

func (s *ConfigTestSuite) TestInvalidValues() {
	testCases := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{name: "port out of range", env: map[string]string{"SHEET_GRPC_PORT": "70000"}, field: "GRPCPort"},
		{name: "unknown log level", env: map[string]string{"SHEET_LOG_LEVEL": "loud"}, field: "LogLevel"},
		{name: "unknown log format", env: map[string]string{"SHEET_LOG_FORMAT": "xml"}, field: "LogFormat"},
		{name: "bad locale", env: map[string]string{"SHEET_LOCALE": "not a locale!"}, field: "Locale"},
		{name: "negative ttl", env: map[string]string{"SHEET_DRAFT_TTL": "-1h"}, field: "DraftTTL"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := config.LoadFrom(tc.env)
			s.Require().True(errors.IsInvalidArgument(err))
			fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Assert().Contains(fields, tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestOverridesReplaceInvalidEnvironment() {
	environ := map[string]string{
		"SHEET_GRPC_PORT":  "70000",
		"SHEET_LOG_LEVEL":  "loud",
		"SHEET_REDIS_ADDR": "redis:6379",
	}
	port := 50052
	level := "debug"

	cfg, err := config.LoadWith(environ, config.Overrides{GRPCPort: &port, LogLevel: &level})
	s.Require().NoError(err)
	s.Assert().Equal(50052, cfg.GRPCPort)
	s.Assert().Equal("debug", cfg.LogLevel)
	s.Assert().Equal("redis:6379", cfg.RedisAddr)

	s.Run("overrides are validated too", func() {
		badPort := 0
		_, err := config.LoadWith(map[string]string{}, config.Overrides{GRPCPort: &badPort})
		s.Require().True(errors.IsInvalidArgument(err))
		fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
		s.Assert().Contains(fields, "GRPCPort")
	})
}

func (s *ConfigTestSuite) TestUnparseableValue() {
	_, err := config.LoadFrom(map[string]string{"SHEET_GRPC_PORT": "abc"})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestNewLogger() {
	cfg, err := config.LoadFrom(map[string]string{"SHEET_LOG_LEVEL": "warn"})
	s.Require().NoError(err)

	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)
	logger.Info("dropped")
	logger.Warn("kept", "draft_id", "draft_1")

	var line map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &line))
	s.Assert().Equal("kept", line["msg"])
	s.Assert().Equal("draft_1", line["draft_id"])
}
