package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/supercells/supercells-api/internal/entity"
	"github.com/supercells/supercells-api/internal/infra/integration/clearbit"
)

// LeadFilters are conjunctive; zero values mean "no filter".
type LeadFilters struct {
	Industry      string
	Location      string
	EmployeeRange string // "min-max", e.g. "51-200" or "501-999999"
	MinScore      int
}

func (f LeadFilters) empty() bool {
	return f.Industry == "" && f.Location == "" && f.EmployeeRange == "" && f.MinScore <= 0
}

// ListLeadsUseCase lists a user's leads newest-first, repairs any lead
// left behind by a half-finished outreach send, derives display logos
// and applies the in-memory filters.
type ListLeadsUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	MsgRepo  entity.SentMessageRepositoryInterface
}

func NewListLeadsUseCase(
	leadRepo entity.LeadRepositoryInterface,
	msgRepo entity.SentMessageRepositoryInterface,
) *ListLeadsUseCase {
	return &ListLeadsUseCase{LeadRepo: leadRepo, MsgRepo: msgRepo}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, userID string, filters LeadFilters) ([]*entity.Lead, error) {
	leads, err := uc.LeadRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load leads: " + err.Error(),
		}
	}

	uc.repairConvertedStatus(ctx, userID, leads)

	for _, lead := range leads {
		lead.LogoURL = clearbit.LogoURL(lead.Website)
	}

	return ApplyFilters(leads, filters), nil
}

// repairConvertedStatus is the read-path compensation for the non-atomic
// outreach send: a lead with sent messages whose status flip never landed
// gets flipped here. Best effort, failures are logged and skipped.
func (uc *ListLeadsUseCase) repairConvertedStatus(ctx context.Context, userID string, leads []*entity.Lead) {
	messaged, err := uc.MsgRepo.ListLeadIDsWithMessages(ctx, userID)
	if err != nil {
		log.Printf("⚠️ Repair pass skipped, could not list messaged leads: %v", err)
		return
	}
	if len(messaged) == 0 {
		return
	}

	messagedSet := make(map[string]bool, len(messaged))
	for _, id := range messaged {
		messagedSet[id] = true
	}

	for _, lead := range leads {
		if !messagedSet[lead.ID] || lead.Status == entity.StatusConverted ||
			lead.Status == entity.StatusClosed || lead.Status == entity.StatusLost {
			continue
		}
		if err := uc.LeadRepo.UpdateStatus(ctx, lead.ID, entity.StatusConverted); err != nil {
			log.Printf("⚠️ Repair of lead %s failed: %v", lead.ID, err)
			continue
		}
		log.Printf("🔧 Repaired lead %s: messages exist, status flipped to Converted", lead.ID)
		lead.Status = entity.StatusConverted
	}
}

// ApplyFilters filters leads in memory. All active filters must match
// (AND); an empty filter set is the identity. Idempotent by construction.
func ApplyFilters(leads []*entity.Lead, filters LeadFilters) []*entity.Lead {
	if filters.empty() {
		return leads
	}

	filtered := make([]*entity.Lead, 0, len(leads))
	for _, lead := range leads {
		if filters.Industry != "" && lead.Industry != filters.Industry {
			continue
		}
		if filters.Location != "" && lead.Location != filters.Location {
			continue
		}
		if filters.EmployeeRange != "" && !employeesInRange(lead.Employees, filters.EmployeeRange) {
			continue
		}
		if filters.MinScore > 0 {
			// Leads without a score fail any floor above zero.
			if lead.LeadScore == nil || *lead.LeadScore < filters.MinScore {
				continue
			}
		}
		filtered = append(filtered, lead)
	}
	return filtered
}

// employeesInRange tests the lead's bucket leading integer against the
// filter range. Unparseable buckets are excluded whenever a range filter
// is active.
func employeesInRange(employees, filterRange string) bool {
	leadCount, ok := leadingInt(employees)
	if !ok {
		return false
	}

	parts := strings.SplitN(filterRange, "-", 2)
	min, ok := leadingInt(parts[0])
	if !ok {
		return false
	}
	if leadCount < min {
		return false
	}
	if len(parts) == 2 {
		if max, ok := leadingInt(parts[1]); ok && leadCount > max {
			return false
		}
	}
	return true
}

// leadingInt parses the leading digits of a bucket segment, so "501+"
// and "50 employees" both work.
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// DeleteLeadUseCase hard-deletes a lead. SentMessage snapshots are kept
// on purpose; they carry their own company snapshot.
type DeleteLeadUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewDeleteLeadUseCase(leadRepo entity.LeadRepositoryInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{LeadRepo: leadRepo}
}

func (uc *DeleteLeadUseCase) Execute(ctx context.Context, userID, leadID string) error {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
		}
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if lead.UserID != userID {
		return &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
	}

	if err := uc.LeadRepo.Delete(ctx, leadID); err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to delete lead: " + err.Error(),
		}
	}
	return nil
}

// UpdateStatusUseCase applies a manual status transition (Active, Closed,
// Lost, ...). Unknown statuses are rejected.
type UpdateStatusUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewUpdateStatusUseCase(leadRepo entity.LeadRepositoryInterface) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{LeadRepo: leadRepo}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, userID, leadID, status string) error {
	if !entity.ValidStatus(status) {
		return &DomainError{Code: "INVALID_STATUS", Message: "unknown lead status: " + status}
	}

	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
		}
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if lead.UserID != userID {
		return &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
	}

	if err := uc.LeadRepo.UpdateStatus(ctx, leadID, status); err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to update status: " + err.Error(),
		}
	}
	return nil
}
