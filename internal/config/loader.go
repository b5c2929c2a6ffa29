package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/xtding233/sheepshead-backend/internal/logging"
)

var loaderLogger = log.With().Str("logger_name", "config::loader").Logger()

const defaultTable = "default"

// Paths helper for the table files.
type Paths struct {
	BaseDir string // e.g. /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "tables", defaultTable+".yaml")
}

func (p Paths) TablePath(table string) string {
	return filepath.Join(p.BaseDir, "tables", table+".yaml")
}

// Loader reads stake tables and merges default → table.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawConfig // key: table name
}

// NewLoader creates a loader for the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawConfig),
	}
}

func (l *Loader) Paths() Paths { return l.paths }

// LoadMerged returns the default table overridden by the named table.
// The default file is required, the table file is optional.
func (l *Loader) LoadMerged(table string) (RawConfig, error) {
	if table == "" {
		table = defaultTable
	}
	l.mu.RLock()
	if cfg, ok := l.cache[table]; ok {
		l.mu.RUnlock()
		return cfg, nil
	}
	l.mu.RUnlock()

	defPath := l.paths.DefaultPath()
	defCfg, found, err := readYAML(defPath)
	if err != nil {
		return RawConfig{}, errors.Wrap(err, fmt.Sprintf("Error reading default table [%s]", defPath))
	}
	if !found {
		return RawConfig{}, errors.Errorf("Default table [%s] does not exist", defPath)
	}

	merged := defCfg
	if table != defaultTable {
		tablePath := l.paths.TablePath(table)
		tableCfg, found, err := readYAML(tablePath)
		if err != nil {
			return RawConfig{}, errors.Wrap(err, fmt.Sprintf("Error reading table [%s]", tablePath))
		}
		if !found {
			loaderLogger.Warn().Str(logging.TableKey, table).Msg("Table file missing, using default table")
		}
		merged = mergeRaw(defCfg, tableCfg)
	}

	l.mu.Lock()
	l.cache[table] = merged
	l.mu.Unlock()
	return merged, nil
}

// Invalidate clears the cache. Call after the watcher detects changes.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawConfig)
}

// readYAML loads a YAML file. A missing file is not an error.
func readYAML(path string) (RawConfig, bool, error) {
	var cfg RawConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return RawConfig{}, false, nil
		}
		return RawConfig{}, false, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RawConfig{}, false, errors.Wrap(err, "Error parsing YAML")
	}
	return cfg, true, nil
}

// mergeRaw overrides a with every field b sets.
func mergeRaw(a, b RawConfig) RawConfig {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}
	if b.Currency != "" {
		out.Currency = b.Currency
	}

	if b.Stake.BasePrice != nil {
		out.Stake.BasePrice = b.Stake.BasePrice
	}
	if b.Stake.SoloPrice != nil {
		out.Stake.SoloPrice = b.Stake.SoloPrice
	}
	if b.Stake.LaufendePrice != nil {
		out.Stake.LaufendePrice = b.Stake.LaufendePrice
	}

	switch {
	case out.Session == nil && b.Session != nil:
		c := *b.Session
		out.Session = &c
	case out.Session != nil && b.Session != nil:
		c := *out.Session
		if b.Session.MinPlayers != nil {
			c.MinPlayers = b.Session.MinPlayers
		}
		out.Session = &c
	}
	return out
}
