package handler

import (
	"net/http"

	"github.com/irierun/irierun-go/internal/api/response"
	"github.com/irierun/irierun-go/internal/services/track"
)

// TrackHandler handles track catalog endpoints
type TrackHandler struct {
	trackService *track.Service
}

// NewTrackHandler creates a new track handler
func NewTrackHandler(trackService *track.Service) *TrackHandler {
	return &TrackHandler{
		trackService: trackService,
	}
}

// List handles GET /api/tracks
func (h *TrackHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.TracksFromModels(h.trackService.List()))
}
