package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"twentyeight/internal/engine"
)

type Config struct {
	Addr         string
	LogLevel     zerolog.Level
	Mode         engine.Mode
	TargetScore  int
	ForcedReveal engine.ForcedRevealPolicy
	// Seed is zero when no SEED was configured; callers pick a fresh one.
	Seed        int64
	PlayerNames []string
}

// Load reads configuration from the environment, after applying any .env
// files given (or ./.env when none are). Missing .env files are ignored.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests need not touch the
// process environment.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{Addr: get("ADDR", ":8080")}

	lvl, err := zerolog.ParseLevel(get("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	switch mode := get("GAME_MODE", "4"); mode {
	case "3", "3p":
		cfg.Mode = engine.ModeThreePlayer
	case "4", "4p":
		cfg.Mode = engine.ModeFourPlayer
	default:
		return Config{}, fmt.Errorf("GAME_MODE: unsupported value %q", mode)
	}

	if v := get("TARGET_SCORE", ""); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("TARGET_SCORE: want a positive integer, got %q", v)
		}
		cfg.TargetScore = n
	}

	policy, err := engine.ParseForcedReveal(get("FORCED_REVEAL", "trump_led"))
	if err != nil {
		return Config{}, fmt.Errorf("FORCED_REVEAL: %w", err)
	}
	cfg.ForcedReveal = policy

	if v := get("SEED", ""); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("SEED: %w", err)
		}
		cfg.Seed = n
	}

	if v := get("PLAYER_NAMES", ""); v != "" {
		for _, name := range strings.Split(v, ",") {
			cfg.PlayerNames = append(cfg.PlayerNames, strings.TrimSpace(name))
		}
		if len(cfg.PlayerNames) != int(cfg.Mode) {
			return Config{}, fmt.Errorf("PLAYER_NAMES: %s needs %d names, got %d", cfg.Mode, int(cfg.Mode), len(cfg.PlayerNames))
		}
	}
	return cfg, nil
}

// Names returns the configured player names or seat defaults.
func (c Config) Names() []string {
	if len(c.PlayerNames) == int(c.Mode) {
		return append([]string(nil), c.PlayerNames...)
	}
	names := make([]string, int(c.Mode))
	for i := range names {
		names[i] = fmt.Sprintf("P%d", i+1)
	}
	return names
}

// GameSeed returns the configured seed, or a time-based one when unset.
func (c Config) GameSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
