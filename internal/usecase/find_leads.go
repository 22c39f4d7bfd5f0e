package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/supercells/supercells-api/internal/entity"
)

type FindLeadsInput struct {
	UserID   string `json:"-"`
	Industry string `json:"industry"`
	Location string `json:"location"`
	Persona  string `json:"persona,omitempty"`
	Count    int    `json:"count,omitempty"` // defaults to 10
}

type FindLeadsOutput struct {
	Requested int            `json:"requested"`
	Inserted  int            `json:"inserted"`
	Leads     []*entity.Lead `json:"leads"`
}

// FindLeadsUseCase asks the research collaborator to invent candidate
// companies and bulk-inserts them. Each insert failure is logged and
// skipped; prior inserts are never rolled back. The caller is told the
// aggregate count only.
type FindLeadsUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	UserRepo entity.UserRepositoryInterface
	Research ResearchService
}

func NewFindLeadsUseCase(
	leadRepo entity.LeadRepositoryInterface,
	userRepo entity.UserRepositoryInterface,
	research ResearchService,
) *FindLeadsUseCase {
	return &FindLeadsUseCase{LeadRepo: leadRepo, UserRepo: userRepo, Research: research}
}

func (uc *FindLeadsUseCase) Execute(ctx context.Context, input FindLeadsInput) (*FindLeadsOutput, error) {
	if errs := ValidateFindLeadsInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}
	count := input.Count
	if count == 0 {
		count = 10
	}

	persona := uc.resolvePersona(ctx, input.UserID, input.Persona)

	existing, err := uc.existingNames(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	suggestions, err := uc.Research.FindLeads(ctx, input.Industry, input.Location, persona, count)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DISCOVERY_FAILED",
			Message: "failed to find leads: " + err.Error(),
		}
	}

	output := &FindLeadsOutput{Requested: len(suggestions), Leads: []*entity.Lead{}}

	for _, suggestion := range suggestions {
		name := strings.TrimSpace(suggestion.CompanyName)
		if name == "" {
			continue
		}
		if existing[strings.ToLower(name)] {
			log.Printf("⏭️ Skipping %s: already tracked", name)
			continue
		}

		lead, err := entity.NewLead(input.UserID, name)
		if err != nil {
			log.Printf("❌ Skipping %s: %v", name, err)
			continue
		}
		lead.Industry = strings.TrimSpace(suggestion.Industry)
		lead.Location = strings.TrimSpace(suggestion.Location)
		lead.Website = strings.TrimSpace(suggestion.Website)
		lead.LinkedinURL = strings.TrimSpace(suggestion.LinkedinURL)
		lead.Description = strings.TrimSpace(suggestion.Description)
		lead.Employees = strings.TrimSpace(suggestion.Employees)
		lead.AIEvidence = strings.TrimSpace(suggestion.AIEvidence)
		score := NormalizeScore(suggestion.LeadScore)
		lead.LeadScore = &score

		if err := uc.LeadRepo.Create(ctx, lead); err != nil {
			// No rollback: earlier inserts stand, this one is skipped.
			log.Printf("❌ Insert of %s failed: %v", name, err)
			continue
		}

		existing[strings.ToLower(name)] = true
		output.Inserted++
		output.Leads = append(output.Leads, lead)
	}

	return output, nil
}

func (uc *FindLeadsUseCase) existingNames(ctx context.Context, userID string) (map[string]bool, error) {
	names, err := uc.LeadRepo.ListCompanyNames(ctx, userID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load existing companies: " + err.Error(),
		}
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = true
	}
	return set, nil
}

func (uc *FindLeadsUseCase) resolvePersona(ctx context.Context, userID, override string) string {
	if entity.ValidPersona(override) {
		return override
	}
	if uc.UserRepo != nil {
		// FindByID reports an absent profile row as (nil, nil).
		if user, err := uc.UserRepo.FindByID(ctx, userID); err == nil && user != nil && entity.ValidPersona(user.Persona) {
			return user.Persona
		}
	}
	return entity.PersonaBrain
}

type HighPotentialOutput struct {
	Lead       *entity.Lead `json:"lead"`
	EmailDraft string       `json:"email_draft"`
}

// FindHighPotentialUseCase asks for a single >90-score candidate plus a
// ready-to-edit email draft, excluding companies the user already tracks.
type FindHighPotentialUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	UserRepo entity.UserRepositoryInterface
	Research ResearchService
}

func NewFindHighPotentialUseCase(
	leadRepo entity.LeadRepositoryInterface,
	userRepo entity.UserRepositoryInterface,
	research ResearchService,
) *FindHighPotentialUseCase {
	return &FindHighPotentialUseCase{LeadRepo: leadRepo, UserRepo: userRepo, Research: research}
}

func (uc *FindHighPotentialUseCase) Execute(ctx context.Context, userID, personaOverride string) (*HighPotentialOutput, error) {
	persona := personaOverride
	if !entity.ValidPersona(persona) {
		persona = entity.PersonaBrain
		if uc.UserRepo != nil {
			if user, err := uc.UserRepo.FindByID(ctx, userID); err == nil && user != nil && entity.ValidPersona(user.Persona) {
				persona = user.Persona
			}
		}
	}

	names, err := uc.LeadRepo.ListCompanyNames(ctx, userID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load existing companies: " + err.Error(),
		}
	}

	suggestion, err := uc.Research.FindHighPotentialLead(ctx, persona, names)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DISCOVERY_FAILED",
			Message: "failed to find a high potential lead: " + err.Error(),
		}
	}

	// The model is told to avoid existing companies; double-check anyway.
	for _, n := range names {
		if strings.EqualFold(n, suggestion.CompanyName) {
			return nil, &TechnicalError{
				Code:    "DISCOVERY_FAILED",
				Message: "suggested lead already exists",
			}
		}
	}

	lead, err := entity.NewLead(userID, strings.TrimSpace(suggestion.CompanyName))
	if err != nil {
		return nil, &TechnicalError{Code: "DISCOVERY_FAILED", Message: err.Error()}
	}
	lead.Industry = strings.TrimSpace(suggestion.Industry)
	lead.Location = strings.TrimSpace(suggestion.Location)
	lead.Website = strings.TrimSpace(suggestion.Website)
	lead.Description = strings.TrimSpace(suggestion.Description)
	lead.Employees = strings.TrimSpace(suggestion.Employees)
	lead.AIEvidence = strings.TrimSpace(suggestion.AIEvidence)
	score := NormalizeScore(suggestion.LeadScore)
	lead.LeadScore = &score

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	return &HighPotentialOutput{Lead: lead, EmailDraft: suggestion.EmailDraft}, nil
}
