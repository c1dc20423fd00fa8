package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/irierun/irierun-go/internal/dependencies/clock"
	"github.com/irierun/irierun-go/internal/dependencies/random"
	"github.com/irierun/irierun-go/internal/generation"
	"github.com/irierun/irierun-go/internal/services/dialogue"
	"github.com/irierun/irierun-go/internal/services/player"
	"github.com/irierun/irierun-go/internal/services/session"
	"github.com/irierun/irierun-go/internal/services/track"
	"github.com/irierun/irierun-go/internal/storage"
	"github.com/irierun/irierun-go/internal/storage/memory"
	redisstorage "github.com/irierun/irierun-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock      clock.Clock
	Random     random.Random
	Generation generation.Client

	// Services
	PlayerService   *player.Service
	SessionService  *session.Service
	TrackService    *track.Service
	DialogueService *dialogue.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Generation is the text generation client (optional)
	// If nil, the unavailable null client is used and dialogue falls
	// back to static phrases
	Generation generation.Client
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
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
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

	gen := cfg.Generation
	if gen == nil {
		gen = generation.Unavailable{}
	}

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, gen, clk, rnd, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, gen generation.Client, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	playerService := player.New(store, clk, rnd, logger)
	sessionService := session.New(store, clk, rnd, logger)
	trackService := track.New()
	dialogueService := dialogue.New(store, gen, clk, rnd, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		Generation:      gen,
		PlayerService:   playerService,
		SessionService:  sessionService,
		TrackService:    trackService,
		DialogueService: dialogueService,
	}
}

// Close releases the storage connection if it holds one
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
