package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// SessionHandler serves owner passphrase setup and unlock.
type SessionHandler struct {
	service *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(svc *service.SessionService) *SessionHandler {
	return &SessionHandler{service: svc}
}

// HandleSetup handles POST /api/v1/session/setup.
func (h *SessionHandler) HandleSetup(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePassphraseRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Setup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadySetUp):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		case errors.Is(err, service.ErrPassphraseRequired), errors.Is(err, service.ErrPassphraseTooShort):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUnlock handles POST /api/v1/session/unlock.
func (h *SessionHandler) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePassphraseRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Unlock(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassphrase):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		case errors.Is(err, service.ErrNotSetUp):
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
		case errors.Is(err, service.ErrPassphraseRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleStatus handles GET /api/v1/session/status.
func (h *SessionHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Status(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodePassphraseRequest(w http.ResponseWriter, r *http.Request) (model.PassphraseRequest, bool) {
	var req model.PassphraseRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return req, false
	}
	return req, true
}
