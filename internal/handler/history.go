package handler

import (
	"net/http"
	"strconv"

	"github.com/passforge/passforge-go/internal/service"
)

// HistoryHandler serves the generation history.
type HistoryHandler struct {
	service *service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: svc}
}

// HandleList handles GET /api/v1/history. Accepts an optional limit query
// parameter.
func (h *HistoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid limit"))
			return
		}
		limit = n
	}

	entries, err := h.service.List(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// HandleClear handles DELETE /api/v1/history.
func (h *HistoryHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Clear(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
