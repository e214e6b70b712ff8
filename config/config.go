// Package config loads memosolve settings from YAML.
//
// A file only needs the keys it wants to change; everything else keeps the
// value from Default.
//
//	memo:
//	  backend: generational
//	  max_entries: 65536
//	search:
//	  max_depth: 100000
//	  iterative: true
//	workers: 8
//	log_level: debug
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/on-the-ground/memo_ive_go/memo"
	"github.com/on-the-ground/memo_ive_go/search"
	"github.com/on-the-ground/memo_ive_go/shared/log"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Memo     Memo   `yaml:"memo"`
	Search   Search `yaml:"search"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log_level"`
}

type Memo struct {
	Backend    memo.Backend `yaml:"backend"`
	MaxEntries int          `yaml:"max_entries"`
}

type Search struct {
	MaxDepth  int  `yaml:"max_depth"`
	Iterative bool `yaml:"iterative"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Memo: Memo{
			Backend:    memo.BackendMap,
			MaxEntries: memo.DefaultMaxEntries,
		},
		Search: Search{
			MaxDepth: search.DefaultMaxDepth,
		},
		Workers:  runtime.NumCPU(),
		LogLevel: string(log.LogInfo),
	}
}

// Load reads path over Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays the YAML document in r onto cfg. Unknown keys are errors.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case !slices.Contains(memo.Backends(), c.Memo.Backend):
		return fmt.Errorf("%w: %s: unknown backend %q", ErrInvalid, ConfigMemoBackend, c.Memo.Backend)
	case c.Memo.MaxEntries <= 0:
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, ConfigMemoMaxEntries, c.Memo.MaxEntries)
	case c.Search.MaxDepth < 0:
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalid, ConfigSearchMaxDepth, c.Search.MaxDepth)
	case c.Workers <= 0:
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, ConfigSolveWorkers, c.Workers)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalid, ConfigLogLevel, err)
	}
	return nil
}

// MemoConfig returns the table settings.
func (c Config) MemoConfig() memo.Config {
	return memo.Config{Backend: c.Memo.Backend, MaxEntries: c.Memo.MaxEntries}
}

// SearchOptions returns the search settings as options.
func (c Config) SearchOptions() []search.Option {
	return []search.Option{
		search.WithMaxDepth(c.Search.MaxDepth),
		search.WithIterative(c.Search.Iterative),
	}
}
