package util

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var envLogger = log.With().Str("logger_name", "util::environment").Logger()

type environment struct {
	LogLevel    string
	ConfigDir   string
	StakeTable  string
	MaxSessions string
}

// Env is a helper object for accessing environment variables.
var Env = &environment{
	LogLevel:    "LOG_LEVEL",
	ConfigDir:   "CONFIG_DIR",
	StakeTable:  "STAKE_TABLE",
	MaxSessions: "MAX_SESSIONS",
}

const (
	defaultConfigDir   = "config"
	defaultStakeTable  = "default"
	defaultMaxSessions = 256
)

func (e *environment) GetConfigDir() string {
	v := os.Getenv(e.ConfigDir)
	if v == "" {
		return defaultConfigDir
	}
	return v
}

func (e *environment) GetStakeTable() string {
	v := os.Getenv(e.StakeTable)
	if v == "" {
		return defaultStakeTable
	}
	return v
}

func (e *environment) GetMaxSessions() int {
	v := os.Getenv(e.MaxSessions)
	if v == "" {
		return defaultMaxSessions
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		envLogger.Warn().Msgf("Invalid %s [%s]. Using %d", e.MaxSessions, v, defaultMaxSessions)
		return defaultMaxSessions
	}
	return n
}

func (e *environment) GetZeroLogLogLevel() zerolog.Level {
	v := strings.ToLower(os.Getenv(e.LogLevel))
	if v == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(v)
	if err != nil {
		envLogger.Warn().Msgf("Unknown %s [%s]. Using info", e.LogLevel, v)
		return zerolog.InfoLevel
	}
	return level
}
