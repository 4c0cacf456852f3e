package handler

import (
	"errors"
	"net/http"

	"github.com/freeeve/datc-orders/internal/logger"
	"github.com/freeeve/datc-orders/internal/service"
)

// ConvertHandler handles notation conversion.
type ConvertHandler struct {
	svc *service.ConvertService
}

// NewConvertHandler creates a ConvertHandler.
func NewConvertHandler(svc *service.ConvertService) *ConvertHandler {
	return &ConvertHandler{svc: svc}
}

// Convert handles POST /api/v1/convert
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Notation *string `json:"notation"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Notation == nil {
		writeError(w, http.StatusBadRequest, "notation is required")
		return
	}

	conv, err := h.svc.Convert(r.Context(), *req.Notation)
	if err != nil {
		if errors.Is(err, service.ErrInvalidNotation) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		logger.ForRequest(r.Context()).Error().Err(err).Msg("Conversion failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, conv)
}
