package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// GeneratorHandler serves password generation and generator configuration.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeConfigRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGetConfig handles GET /api/v1/config.
func (h *GeneratorHandler) HandleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Config())
}

// HandleUpdateConfig handles PUT /api/v1/config.
func (h *GeneratorHandler) HandleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeConfigRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Apply(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleListStrengths handles GET /api/v1/strength.
func (h *GeneratorHandler) HandleListStrengths(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Strengths())
}

// decodeConfigRequest decodes the shared config request body. An empty body
// is a valid request that changes nothing.
func decodeConfigRequest(w http.ResponseWriter, r *http.Request) (model.ConfigRequest, bool) {
	var req model.ConfigRequest
	if r.Body == nil {
		return req, true
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return model.ConfigRequest{}, true
		}
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return req, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return req, false
	}
	return req, true
}

func isValidationError(err error) bool {
	return errors.Is(err, generator.ErrInvalidStrength) ||
		errors.Is(err, service.ErrNegativeLength) ||
		errors.Is(err, service.ErrLengthTooLong)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
