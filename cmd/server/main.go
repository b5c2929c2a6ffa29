package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/xtding233/sheepshead-backend/internal/config"
	"github.com/xtding233/sheepshead-backend/internal/logging"
	"github.com/xtding233/sheepshead-backend/internal/rest"
	"github.com/xtding233/sheepshead-backend/internal/store"
	"github.com/xtding233/sheepshead-backend/internal/util"
)

var cmdArgs arg

type arg struct {
	port          uint
	watchInterval time.Duration
}

func init() {
	flag.UintVar(&cmdArgs.port, "port", 8080, "Listen port")
	flag.DurationVar(&cmdArgs.watchInterval, "watch-interval", 5*time.Second, "Poll interval for stake table changes")
}

func main() {
	flag.Parse()

	logLevel := util.Env.GetZeroLogLogLevel()
	fmt.Printf("Setting log level to %s\n", logLevel)
	zerolog.SetGlobalLevel(logLevel)
	mainLogger := logging.GetZeroLogger("main::main", nil)

	configDir := util.Env.GetConfigDir()
	table := util.Env.GetStakeTable()
	loader := config.NewLoader(configDir)

	// fail fast on a broken table instead of on the first request
	t, err := loader.Resolve(table)
	if err != nil {
		mainLogger.Error().Err(err).Str(logging.TableKey, table).Msg("Could not load stake table")
		os.Exit(1)
	}
	mainLogger.Info().
		Str(logging.TableKey, t.Name).
		Msgf("Stake table loaded: base %d, solo %d, laufende %d", t.BasePrice, t.SoloPrice, t.Laufende)

	watcher := config.NewFileWatcher(
		[]string{loader.Paths().DefaultPath(), loader.Paths().TablePath(table)},
		cmdArgs.watchInterval,
		func(path string) {
			mainLogger.Info().Str(logging.PathKey, path).Msg("Stake table changed, reloading")
			loader.Invalidate()
			if _, err := loader.Resolve(table); err != nil {
				mainLogger.Error().Err(err).Str(logging.TableKey, table).Msg("Reloaded stake table is invalid")
			}
		},
	)
	watcher.Start()
	defer watcher.Stop()

	sessions, err := store.New(util.Env.GetMaxSessions())
	if err != nil {
		mainLogger.Error().Err(err).Msg("Could not create session store")
		os.Exit(1)
	}

	srv := rest.NewServer(sessions, loader, table)
	if err := rest.RunServer(srv, cmdArgs.port); err != nil {
		mainLogger.Error().Err(err).Msg("Server stopped")
		os.Exit(1)
	}
}
