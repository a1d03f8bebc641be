package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/yahtzee-go/internal/config"
	"github.com/mcoot/yahtzee-go/internal/factory"
	redisstorage "github.com/mcoot/yahtzee-go/internal/storage/redis"
)

// options holds the environment configuration plus flag overrides
type options struct {
	cfg     *config.Config
	loadErr error
	verbose bool
}

func newOptions() *options {
	cfg, err := config.Load()
	if err != nil {
		// Keep going with defaults so flags can still be registered; the error surfaces before any command runs
		cfg = &config.Config{
			StorageType:  config.StorageTypeMemory,
			RedisURL:     redisstorage.DefaultConfig().URL,
			LogLevel:     slog.LevelWarn,
			HistoryLimit: 10,
			Output:       "text",
		}
	}
	return &options{cfg: cfg, loadErr: err}
}

func (o *options) validate() error {
	if o.loadErr != nil {
		return o.loadErr
	}
	return o.cfg.Validate()
}

// newLogger writes JSON logs to w at the configured level, or debug when verbose
func (o *options) newLogger(w io.Writer) *slog.Logger {
	level := o.cfg.LogLevel
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// newApp wires the application for a single command invocation
func (o *options) newApp(logger *slog.Logger, seed uint64) (*factory.App, error) {
	fcfg := factory.Config{
		Logger:      logger,
		StorageType: o.cfg.StorageType,
		Seed:        seed,
	}
	if o.cfg.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = o.cfg.RedisURL
		fcfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(fcfg)
	if err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}
	return app, nil
}

func closeApp(app *factory.App, logger *slog.Logger) {
	if err := app.Close(); err != nil {
		logger.Warn("failed to close storage", slog.String("error", err.Error()))
	}
}
