package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/yahtzee-go/internal/config"
	"github.com/mcoot/yahtzee-go/internal/dependencies/clock"
	"github.com/mcoot/yahtzee-go/internal/dependencies/random"
	"github.com/mcoot/yahtzee-go/internal/services/dice"
	"github.com/mcoot/yahtzee-go/internal/services/game"
	"github.com/mcoot/yahtzee-go/internal/services/results"
	"github.com/mcoot/yahtzee-go/internal/storage"
	"github.com/mcoot/yahtzee-go/internal/storage/memory"
	redisstorage "github.com/mcoot/yahtzee-go/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Roller    *dice.Roller
	Evaluator *results.Evaluator

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the history backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed makes dice deterministic when non-zero
	Seed uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
		logger.Info("using seeded dice", slog.Uint64("seed", cfg.Seed))
	}

	return newWithDependencies(store, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Storage:   store,
		Clock:     clk,
		Random:    rnd,
		Roller:    dice.NewRoller(rnd),
		Evaluator: results.New(),
		Logger:    logger,
	}
}

// NewEngine creates a game engine talking to the given display and input
func (a *App) NewEngine(display game.Display, input game.Input) *game.Engine {
	return game.NewEngine(display, input, a.Roller, a.Evaluator, a.Storage, a.Clock, a.Random, a.Logger)
}

// DiceSource returns manual dice entry when requested, otherwise real rolls
func (a *App) DiceSource(manual bool, prompter dice.DiePrompter) dice.Source {
	if manual {
		return dice.NewManualSource(prompter, a.Logger)
	}
	return dice.NewRandomSource(a.Roller)
}

// Close releases the storage connection if it holds one
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
