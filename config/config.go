// SPDX-License-Identifier: MIT

// Package config loads library settings from defaults, an optional TOML
// file, LVPGM_* environment variables and command-line flags, in increasing
// priority, and turns them into component options.
package config

import (
	"strings"

	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/pbnjay/memory"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvpgm/elimination"
	"github.com/katalvlaran/lvpgm/logging"
	"github.com/katalvlaran/lvpgm/schedule"
	"github.com/katalvlaran/lvpgm/triangulation"
)

// DefaultFile is read when Load gets an empty path. A missing file is not
// an error.
const DefaultFile = "lvpgm.toml"

// EnvPrefix prefixes every environment key (LVPGM_LOG_LEVEL -> log.level).
const EnvPrefix = "LVPGM_"

// ErrInvalid indicates a setting outside its accepted values.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds the library settings.
type Config struct {
	Heuristic     string `koanf:"heuristic"`
	Minimality    bool   `koanf:"minimality"`
	SingleTree    bool   `koanf:"single_tree"`
	Threads       int    `koanf:"threads"`
	MemoryCeiling int64  `koanf:"memory_ceiling"`
	Log           Log    `koanf:"log"`
}

// Log holds the logger settings.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// sections are the nested tables whose env keys keep one underscore as the
// delimiter.
var sections = []string{"log"}

// flagKeys maps flag names onto configuration keys.
var flagKeys = map[string]string{
	"heuristic":      "heuristic",
	"minimality":     "minimality",
	"single-tree":    "single_tree",
	"threads":        "threads",
	"memory-ceiling": "memory_ceiling",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// Defaults returns the built-in settings. The memory ceiling is half of the
// physical memory.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"heuristic":      elimination.MinWeight.String(),
		"minimality":     false,
		"single_tree":    false,
		"threads":        1,
		"memory_ceiling": int64(memory.TotalMemory() / 2),
		"log.level":      "info",
		"log.format":     logging.FormatJSON,
	}
}

// RegisterFlags declares the flags read by Load on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("heuristic", elimination.MinWeight.String(), "elimination heuristic (min-weight, min-fill, min-degree, weighted-fill)")
	fs.Bool("minimality", false, "remove redundant fill-ins")
	fs.Bool("single-tree", false, "link junction-tree roots into one tree")
	fs.Int("threads", 1, "parallel scheduler workers")
	fs.Int64("memory-ceiling", 0, "parallel scheduler memory ceiling in bytes (0: half of physical memory)")
	fs.String("log-level", "info", "log level")
	fs.String("log-format", logging.FormatJSON, "log format (json, console)")
}

// Load reads the configuration. Priority: flags > env > file > defaults.
// path "" reads DefaultFile if present; a non-empty path must exist. fs may
// be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(Defaults()), nil); err != nil {
		return nil, errors.Wrap(err, "config: defaults")
	}

	if path == "" {
		_ = k.Load(file.Provider(DefaultFile), toml.Parser())
	} else if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "config: file %s", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "config: env")
	}

	if fs != nil {
		if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, flagKey(fs)), nil); err != nil {
			return nil, errors.Wrap(err, "config: flags")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}
	if cfg.MemoryCeiling == 0 {
		cfg.MemoryCeiling = int64(memory.TotalMemory() / 2)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if _, err := elimination.ParseHeuristic(c.Heuristic); err != nil {
		return errors.Wrapf(ErrInvalid, "heuristic %q", c.Heuristic)
	}
	if c.Threads < 1 {
		return errors.Wrapf(ErrInvalid, "threads %d", c.Threads)
	}
	if c.MemoryCeiling < 0 {
		return errors.Wrapf(ErrInvalid, "memory_ceiling %d", c.MemoryCeiling)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrapf(ErrInvalid, "log.level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		return errors.Wrapf(ErrInvalid, "log.format %q", c.Log.Format)
	}

	return nil
}

// Logger builds the configured logger.
func (c *Config) Logger() (*zap.Logger, error) {
	return logging.New(c.Log.Level, c.Log.Format)
}

// TriangulationOptions translates the settings into triangulation options.
func (c *Config) TriangulationOptions(log *zap.Logger) ([]triangulation.Option, error) {
	h, err := elimination.ParseHeuristic(c.Heuristic)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalid, "heuristic %q", c.Heuristic)
	}
	opts := []triangulation.Option{
		triangulation.WithHeuristic(h),
		triangulation.WithMinimality(c.Minimality),
	}
	if c.SingleTree {
		opts = append(opts, triangulation.WithSingleTree())
	}
	if log != nil {
		opts = append(opts, triangulation.WithLogger(log))
	}

	return opts, nil
}

// Scheduler returns a Sequential scheduler for one thread and a Parallel
// one otherwise. extra options (metrics, hooks) are appended.
func (c *Config) Scheduler(log *zap.Logger, extra ...schedule.Option) schedule.Scheduler {
	var opts []schedule.Option
	if log != nil {
		opts = append(opts, schedule.WithLogger(log))
	}
	opts = append(opts, extra...)
	if c.Threads <= 1 {
		return schedule.NewSequential(opts...)
	}
	opts = append(opts, schedule.WithThreads(c.Threads), schedule.WithMemoryCeiling(c.MemoryCeiling))

	return schedule.NewParallel(opts...)
}

// envKey maps LVPGM_LOG_LEVEL to log.level and LVPGM_SINGLE_TREE to
// single_tree.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, sec := range sections {
		if strings.HasPrefix(key, sec+"_") {
			return sec + "." + strings.TrimPrefix(key, sec+"_")
		}
	}

	return key
}

// flagKey renames flags to configuration keys and skips unknown flags.
func flagKey(fs *pflag.FlagSet) func(f *pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}

// mapProvider feeds a flat, dot-delimited key map to koanf.
type mapProvider map[string]interface{}

func (p mapProvider) Read() (map[string]interface{}, error) {
	return maps.Unflatten(p, "."), nil
}

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: map provider does not support ReadBytes")
}
