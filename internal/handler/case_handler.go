package handler

import (
	"errors"
	"net/http"

	"github.com/freeeve/datc-orders/internal/auth"
	"github.com/freeeve/datc-orders/internal/logger"
	"github.com/freeeve/datc-orders/internal/service"
)

// CaseHandler handles stored case endpoints.
type CaseHandler struct {
	svc *service.ConvertService
}

// NewCaseHandler creates a CaseHandler.
func NewCaseHandler(svc *service.ConvertService) *CaseHandler {
	return &CaseHandler{svc: svc}
}

// ListCases handles GET /api/v1/cases
func (h *CaseHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.svc.ListCases(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cases)
}

// GetCase handles GET /api/v1/cases/{id}
func (h *CaseHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCase(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateCase handles POST /api/v1/cases
func (h *CaseHandler) CreateCase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Notation string `json:"notation"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.SaveCase(r.Context(), req.Name, req.Notation)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	logger.ForRequest(r.Context()).Info().
		Str("client", auth.ClientFromContext(r.Context())).
		Str("caseId", c.ID).
		Msg("Case created")
	writeJSON(w, http.StatusCreated, c)
}

// DeleteCase handles DELETE /api/v1/cases/{id}
func (h *CaseHandler) DeleteCase(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCase(r.Context(), r.PathValue("id")); err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CaseHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrCaseNotFound):
		writeError(w, http.StatusNotFound, "case not found")
	case errors.Is(err, service.ErrCaseExists):
		writeError(w, http.StatusConflict, "case already exists")
	case errors.Is(err, service.ErrInvalidCase):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidNotation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		logger.ForRequest(r.Context()).Error().Err(err).Msg("Case request failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
