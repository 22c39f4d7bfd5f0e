package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/supercells/supercells-api/internal/entity"
	"github.com/supercells/supercells-api/internal/infra/http/middleware"
	"github.com/supercells/supercells-api/internal/usecase"
)

type LeadHandler struct {
	QualifyUC      *usecase.QualifyLeadUseCase
	ListUC         *usecase.ListLeadsUseCase
	DeleteUC       *usecase.DeleteLeadUseCase
	UpdateStatusUC *usecase.UpdateStatusUseCase
}

func NewLeadHandler(
	qualifyUC *usecase.QualifyLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	updateStatusUC *usecase.UpdateStatusUseCase,
) *LeadHandler {
	return &LeadHandler{
		QualifyUC:      qualifyUC,
		ListUC:         listUC,
		DeleteUC:       deleteUC,
		UpdateStatusUC: updateStatusUC,
	}
}

// HandleList returns the user's leads, optionally filtered by query
// params: industry, location, employee_range (e.g. "11-50") and min_score.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	filters := usecase.LeadFilters{
		Industry:      r.URL.Query().Get("industry"),
		Location:      r.URL.Query().Get("location"),
		EmployeeRange: r.URL.Query().Get("employee_range"),
	}
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		minScore, err := strconv.Atoi(raw)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "min_score must be an integer")
			return
		}
		filters.MinScore = minScore
	}

	leads, err := h.ListUC.Execute(r.Context(), session.UserID, filters)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}
	input.UserID = session.UserID

	lead, err := h.QualifyUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordLeadCreated("manual")
	if lead.Status == entity.StatusQualified {
		middleware.RecordLeadQualified()
	}

	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	leadID := chi.URLParam(r, "id")
	if err := h.DeleteUC.Execute(r.Context(), session.UserID, leadID); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *LeadHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	leadID := chi.URLParam(r, "id")
	if err := h.UpdateStatusUC.Execute(r.Context(), session.UserID, leadID, input.Status); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": input.Status})
}

// HandleAnalyze re-runs the AI analysis for an existing lead, scraping
// its website when one is known.
func (h *LeadHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	leadID := chi.URLParam(r, "id")
	lead, err := h.QualifyUC.Reanalyze(r.Context(), session.UserID, leadID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	if lead.Status == entity.StatusQualified {
		middleware.RecordLeadQualified()
	}

	writeJSON(w, http.StatusOK, lead)
}
