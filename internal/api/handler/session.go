package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/irierun/irierun-go/internal/api/request"
	"github.com/irierun/irierun-go/internal/api/response"
	"github.com/irierun/irierun-go/internal/model"
	"github.com/irierun/irierun-go/internal/services/session"
)

// SessionHandler handles game session endpoints
type SessionHandler struct {
	sessionService *session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *session.Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// Create handles POST /api/game-sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}
	if req.TrackName == "" {
		WriteError(w, NewInvalidRequestError("track_name is required"))
		return
	}

	created, err := h.sessionService.Start(
		r.Context(),
		model.PlayerID(req.PlayerID),
		req.TrackName,
		model.CharacterType(req.CharacterType),
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(created))
}

// Update handles PUT /api/game-sessions/{id}
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req request.UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Score < 0 || req.Distance < 0 || req.TimePlayed < 0 {
		WriteError(w, NewInvalidRequestError("score, distance and time_played must be non-negative"))
		return
	}

	updated, err := h.sessionService.Update(r.Context(), model.SessionID(id), model.SessionUpdate{
		Score:      req.Score,
		Distance:   req.Distance,
		TimePlayed: req.TimePlayed,
		Completed:  req.Completed,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(updated))
}
