package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	apihandler "github.com/irierun/irierun-go/internal/api/handler"
	"github.com/irierun/irierun-go/internal/api/middleware"
	"github.com/irierun/irierun-go/internal/api/response"
	"github.com/irierun/irierun-go/internal/services/dialogue"
	"github.com/irierun/irierun-go/internal/services/player"
	"github.com/irierun/irierun-go/internal/services/session"
	"github.com/irierun/irierun-go/internal/services/track"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	PlayerService   *player.Service
	SessionService  *session.Service
	TrackService    *track.Service
	DialogueService *dialogue.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := apihandler.NewPlayerHandler(cfg.PlayerService)
	sessionHandler := apihandler.NewSessionHandler(cfg.SessionService)
	trackHandler := apihandler.NewTrackHandler(cfg.TrackService)
	dialogueHandler := apihandler.NewDialogueHandler(cfg.DialogueService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)

	// Track catalog
	api.HandleFunc("/tracks", trackHandler.List).Methods(http.MethodGet)

	// Game session routes
	api.HandleFunc("/game-sessions", sessionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/game-sessions/{id}", sessionHandler.Update).Methods(http.MethodPut)

	// Dialogue generation
	api.HandleFunc("/dialogue", dialogueHandler.Create).Methods(http.MethodPost)

	// Leaderboard
	api.HandleFunc("/leaderboard", playerHandler.Leaderboard).Methods(http.MethodGet)

	// Liveness/status endpoint
	api.HandleFunc("/", statusHandler).Methods(http.MethodGet)

	// The game client is served from a separate origin
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return cors(r)
}

func statusHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Status{
		Message: "Irie Run Game API",
		Status:  "running",
	})
}
