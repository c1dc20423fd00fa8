package handler

import (
	"encoding/json"
	"net/http"

	"github.com/irierun/irierun-go/internal/api/request"
	"github.com/irierun/irierun-go/internal/api/response"
	"github.com/irierun/irierun-go/internal/model"
	"github.com/irierun/irierun-go/internal/services/dialogue"
)

// DialogueHandler handles dialogue generation endpoints
type DialogueHandler struct {
	dialogueService *dialogue.Service
}

// NewDialogueHandler creates a new dialogue handler
func NewDialogueHandler(dialogueService *dialogue.Service) *DialogueHandler {
	return &DialogueHandler{
		dialogueService: dialogueService,
	}
}

// Create handles POST /api/dialogue
func (h *DialogueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.DialogueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Context == "" {
		WriteError(w, NewInvalidRequestError("context is required"))
		return
	}
	if req.TrackName == "" {
		WriteError(w, NewInvalidRequestError("track_name is required"))
		return
	}

	entry := h.dialogueService.Resolve(
		r.Context(),
		model.DialogueContext(req.Context),
		req.TrackName,
		req.PlayerName,
	)

	// Dialogue resolution is read-like: the entry is a side-effect log,
	// not a client-addressable resource, so this returns 200
	response.JSON(w, http.StatusOK, response.DialogueFromModel(entry))
}
