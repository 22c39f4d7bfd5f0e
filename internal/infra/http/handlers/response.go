package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/supercells/supercells-api/internal/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeUsecaseError maps workflow errors onto HTTP statuses. Domain
// errors are the caller's fault, technical errors are ours or a
// collaborator's.
func writeUsecaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case "LEAD_NOT_FOUND":
			status = http.StatusNotFound
		case "DUPLICATE_COMPANY":
			status = http.StatusConflict
		}
		writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		status := http.StatusInternalServerError
		switch techErr.Code {
		case "ANALYSIS_FAILED", "DISCOVERY_FAILED", "GENERATION_FAILED":
			status = http.StatusBadGateway
		}
		writeErrorResponse(w, status, techErr.Code, techErr.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
