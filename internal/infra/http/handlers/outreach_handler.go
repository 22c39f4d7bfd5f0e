package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/supercells/supercells-api/internal/infra/http/middleware"
	"github.com/supercells/supercells-api/internal/usecase"
)

type OutreachHandler struct {
	GenerateUC *usecase.GenerateMessageUseCase
	SendUC     *usecase.SendMessageUseCase
	MessagesUC *usecase.ListMessagesUseCase
}

func NewOutreachHandler(
	generateUC *usecase.GenerateMessageUseCase,
	sendUC *usecase.SendMessageUseCase,
	messagesUC *usecase.ListMessagesUseCase,
) *OutreachHandler {
	return &OutreachHandler{
		GenerateUC: generateUC,
		SendUC:     sendUC,
		MessagesUC: messagesUC,
	}
}

func (h *OutreachHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	var input usecase.GenerateMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}
	input.UserID = session.UserID

	message, err := h.GenerateUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func (h *OutreachHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	var input usecase.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}
	input.UserID = session.UserID
	input.UserEmail = session.Email

	output, err := h.SendUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordMessageSent(input.Channel)

	writeJSON(w, http.StatusCreated, output)
}

func (h *OutreachHandler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	messages, err := h.MessagesUC.Execute(r.Context(), session.UserID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messages)
}
