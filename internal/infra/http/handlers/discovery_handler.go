package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/supercells/supercells-api/internal/infra/http/middleware"
	"github.com/supercells/supercells-api/internal/infra/queue"
	"github.com/supercells/supercells-api/internal/usecase"
)

type DiscoveryHandler struct {
	FindUC          *usecase.FindLeadsUseCase
	HighPotentialUC *usecase.FindHighPotentialUseCase
	Producer        usecase.QueueProducerInterface // nil when RabbitMQ is off
}

func NewDiscoveryHandler(
	findUC *usecase.FindLeadsUseCase,
	highPotentialUC *usecase.FindHighPotentialUseCase,
	producer usecase.QueueProducerInterface,
) *DiscoveryHandler {
	return &DiscoveryHandler{
		FindUC:          findUC,
		HighPotentialUC: highPotentialUC,
		Producer:        producer,
	}
}

func (h *DiscoveryHandler) HandleFind(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	var input usecase.FindLeadsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}
	input.UserID = session.UserID

	output, err := h.FindUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	for i := 0; i < output.Inserted; i++ {
		middleware.RecordLeadCreated("discovery")
	}

	writeJSON(w, http.StatusOK, output)
}

// HandleFindAsync enqueues the discovery instead of running it inline.
// Returns 202; results show up in the lead list when the worker is done.
func (h *DiscoveryHandler) HandleFindAsync(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	if h.Producer == nil {
		writeErrorResponse(w, http.StatusServiceUnavailable, "QUEUE_UNAVAILABLE", "async discovery is not configured")
		return
	}

	var input usecase.FindLeadsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}
	input.UserID = session.UserID

	if errs := usecase.ValidateFindLeadsInput(input); len(errs) > 0 {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", errs[0].Error())
		return
	}

	job := queue.DiscoveryJob{
		UserID:   input.UserID,
		Industry: input.Industry,
		Location: input.Location,
		Persona:  input.Persona,
		Count:    input.Count,
	}
	if err := h.Producer.PublishDiscovery(r.Context(), job); err != nil {
		middleware.RecordIntegrationError("rabbitmq")
		writeErrorResponse(w, http.StatusInternalServerError, "QUEUE_ERROR", "failed to enqueue discovery job")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
}

func (h *DiscoveryHandler) HandleHighPotential(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromContext(r.Context())
	if session == nil {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing session")
		return
	}

	var input struct {
		Persona string `json:"persona,omitempty"`
	}
	if r.Body != nil {
		// Body is optional for this endpoint.
		json.NewDecoder(r.Body).Decode(&input)
	}

	output, err := h.HighPotentialUC.Execute(r.Context(), session.UserID, input.Persona)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordLeadCreated("high_potential")

	writeJSON(w, http.StatusOK, output)
}
