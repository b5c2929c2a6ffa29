package util

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestEnvironmentDefaults(t *testing.T) {
	t.Setenv("CONFIG_DIR", "")
	t.Setenv("STAKE_TABLE", "")
	t.Setenv("MAX_SESSIONS", "")
	t.Setenv("LOG_LEVEL", "")

	if Env.GetConfigDir() != "config" || Env.GetStakeTable() != "default" {
		t.Errorf("unexpected defaults %s %s", Env.GetConfigDir(), Env.GetStakeTable())
	}
	if Env.GetMaxSessions() != 256 {
		t.Errorf("unexpected max sessions %d", Env.GetMaxSessions())
	}
	if Env.GetZeroLogLogLevel() != zerolog.InfoLevel {
		t.Errorf("unexpected log level %s", Env.GetZeroLogLogLevel())
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("STAKE_TABLE", "highroller")
	t.Setenv("MAX_SESSIONS", "12")
	t.Setenv("LOG_LEVEL", "DEBUG")
	if Env.GetStakeTable() != "highroller" || Env.GetMaxSessions() != 12 {
		t.Errorf("overrides ignored")
	}
	if Env.GetZeroLogLogLevel() != zerolog.DebugLevel {
		t.Errorf("unexpected log level %s", Env.GetZeroLogLogLevel())
	}

	t.Setenv("MAX_SESSIONS", "-1")
	t.Setenv("LOG_LEVEL", "loud")
	if Env.GetMaxSessions() != 256 || Env.GetZeroLogLogLevel() != zerolog.InfoLevel {
		t.Errorf("invalid values must fall back to defaults")
	}
}
