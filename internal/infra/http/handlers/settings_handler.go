package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/supercells/supercells-api/internal/entity"
	"github.com/supercells/supercells-api/internal/infra/http/middleware"
	"github.com/supercells/supercells-api/internal/usecase"
)

type SettingsHandler struct {
	SettingsUC *usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUC *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{SettingsUC: settingsUC}
}

func (h *SettingsHandler) HandleGetCRM(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	config, err := h.SettingsUC.GetCRMConfig(r.Context(), session.UserID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, config)
}

func (h *SettingsHandler) HandleSaveCRM(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	var config entity.CRMConfig
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	if err := h.SettingsUC.SaveCRMConfig(r.Context(), session.UserID, &config); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *SettingsHandler) HandleUpdateAvatar(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	var input struct {
		Persona string `json:"persona"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	if err := h.SettingsUC.UpdateAvatar(r.Context(), session.UserID, input.Persona); err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"persona": input.Persona})
}
