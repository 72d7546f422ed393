package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/securevault/security-service/internal/core/domain"
	"github.com/securevault/security-service/internal/core/services"
)

type AuditRequest struct {
	UserID  string              `json:"user_id" validate:"required,max=100"`
	Entries []domain.AuditEntry `json:"entries" validate:"dive"`
}

type AuditHandler struct {
	Service *services.AuditService
}

func NewAuditHandler(service *services.AuditService) *AuditHandler {
	return &AuditHandler{Service: service}
}

// Generate handles POST /audit
func (h *AuditHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid audit request: "+err.Error())
		return
	}

	report := h.Service.GenerateReport(r.Context(), req.UserID, req.Entries)
	writeJSON(w, http.StatusOK, report)
}
