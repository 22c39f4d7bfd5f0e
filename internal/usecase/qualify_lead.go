package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/supercells/supercells-api/internal/entity"
	"github.com/supercells/supercells-api/internal/infra/integration/openai"
)

// scrapeCharLimit keeps the research prompt inside the model's context
// window when website content is attached.
const scrapeCharLimit = 12000

type CreateLeadInput struct {
	UserID      string `json:"-"`
	CompanyName string `json:"company_name"`
	Persona     string `json:"persona,omitempty"` // defaults to the user's stored avatar
}

// QualifyLeadUseCase turns a bare company name into an enriched, scored
// lead. The scoring itself is delegated to the research collaborator;
// the only logic here is shape sanitation, score normalization and
// deriving the status from isQualified.
type QualifyLeadUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	UserRepo entity.UserRepositoryInterface
	Research ResearchService
	Scraper  WebsiteScraper // optional, used by Reanalyze for deep runs
}

func NewQualifyLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	userRepo entity.UserRepositoryInterface,
	research ResearchService,
	webScraper WebsiteScraper,
) *QualifyLeadUseCase {
	return &QualifyLeadUseCase{
		LeadRepo: leadRepo,
		UserRepo: userRepo,
		Research: research,
		Scraper:  webScraper,
	}
}

// Execute analyzes first and inserts once: a failed analysis persists
// nothing, and the row never appears half-populated.
func (uc *QualifyLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	persona := uc.resolvePersona(ctx, input.UserID, input.Persona)

	analysis, err := uc.Research.AnalyzeCompany(ctx, strings.TrimSpace(input.CompanyName), persona)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "ANALYSIS_FAILED",
			Message: "analysis failed: " + err.Error(),
		}
	}

	lead, err := entity.NewLead(input.UserID, strings.TrimSpace(input.CompanyName))
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}
	applyAnalysis(lead, sanitizeAnalysis(analysis))

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		if errors.Is(err, entity.ErrCompanyAlreadyExists) {
			return nil, &DomainError{
				Code:    "DUPLICATE_COMPANY",
				Message: "you already track this company",
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	return lead, nil
}

// Reanalyze re-runs the analysis on an existing lead and overwrites the
// enrichment fields. When the lead has a website, its content is scraped
// and handed to the collaborator; the scrape itself is best effort.
func (uc *QualifyLeadUseCase) Reanalyze(ctx context.Context, userID, leadID string) (*entity.Lead, error) {
	lead, err := uc.findOwnedLead(ctx, userID, leadID)
	if err != nil {
		return nil, err
	}

	persona := uc.resolvePersona(ctx, userID, "")

	var analysis *openai.CompanyAnalysis
	if content := uc.scrapeWebsite(ctx, lead.Website); content != "" {
		analysis, err = uc.Research.AnalyzeCompanyContent(ctx, lead.CompanyName, persona, content)
	} else {
		analysis, err = uc.Research.AnalyzeCompany(ctx, lead.CompanyName, persona)
	}
	if err != nil {
		return nil, &TechnicalError{
			Code:    "ANALYSIS_FAILED",
			Message: "analysis failed: " + err.Error(),
		}
	}

	applyAnalysis(lead, sanitizeAnalysis(analysis))

	if err := uc.LeadRepo.UpdateAnalysis(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist analysis: " + err.Error(),
		}
	}

	return lead, nil
}

func (uc *QualifyLeadUseCase) findOwnedLead(ctx context.Context, userID, leadID string) (*entity.Lead, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	// Row-level ownership is the only access control.
	if lead.UserID != userID {
		return nil, &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
	}
	return lead, nil
}

func (uc *QualifyLeadUseCase) resolvePersona(ctx context.Context, userID, override string) string {
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

func (uc *QualifyLeadUseCase) scrapeWebsite(ctx context.Context, website string) string {
	if uc.Scraper == nil || website == "" {
		return ""
	}
	pages, err := uc.Scraper.Scrape(ctx, website)
	if err != nil {
		log.Printf("⚠️ Scrape of %s failed, falling back to plain research: %v", website, err)
		return ""
	}

	var b strings.Builder
	for _, p := range pages {
		b.WriteString(p.Title)
		b.WriteString("\n")
		b.WriteString(p.Text)
		b.WriteString("\n\n")
		if b.Len() > scrapeCharLimit {
			break
		}
	}
	content := b.String()
	if len(content) > scrapeCharLimit {
		content = content[:scrapeCharLimit]
	}
	return content
}

// sanitizeAnalysis enforces the trust-the-collaborator contract: missing
// numerics become 0, missing text "", missing lists empty, and every
// score lands on the canonical 0-100 scale.
func sanitizeAnalysis(a *openai.CompanyAnalysis) *openai.CompanyAnalysis {
	clean := *a

	clean.Website = strings.TrimSpace(a.Website)
	clean.LinkedinURL = strings.TrimSpace(a.LinkedinURL)
	clean.Description = strings.TrimSpace(a.Description)
	clean.Location = strings.TrimSpace(a.Location)
	clean.Employees = strings.TrimSpace(a.Employees)
	clean.Industry = strings.TrimSpace(a.Industry)
	clean.AIEvidence = strings.TrimSpace(a.AIEvidence)
	clean.Notes = strings.TrimSpace(a.Notes)
	clean.DecisionMaker = strings.TrimSpace(a.DecisionMaker)

	clean.LeadScore = float64(NormalizeScore(a.LeadScore))
	clean.AIInterestLevel = float64(NormalizeScore(a.AIInterestLevel))
	clean.CompatibilityMetrics.CompanyProfileMatch = float64(NormalizeScore(a.CompatibilityMetrics.CompanyProfileMatch))
	clean.CompatibilityMetrics.RelationshipInfluence = float64(NormalizeScore(a.CompatibilityMetrics.RelationshipInfluence))
	clean.CompatibilityMetrics.BudgetAlignment = float64(NormalizeScore(a.CompatibilityMetrics.BudgetAlignment))
	clean.CompatibilityMetrics.BusinessNeedsMatch = float64(NormalizeScore(a.CompatibilityMetrics.BusinessNeedsMatch))

	if clean.RecentActivity == nil {
		clean.RecentActivity = []string{}
	}

	return &clean
}

// NormalizeScore maps a collaborator score onto 0-100. The source flows
// disagreed on the scale (0-100 rubric vs 0-10 interest levels), so
// values in (0,10] are treated as a ten-point scale and everything is
// clamped.
func NormalizeScore(v float64) int {
	if v <= 0 {
		return 0
	}
	if v <= 10 {
		v *= 10
	}
	if v > 100 {
		v = 100
	}
	return int(v + 0.5)
}

func applyAnalysis(lead *entity.Lead, a *openai.CompanyAnalysis) {
	now := time.Now()

	lead.Website = a.Website
	lead.LinkedinURL = a.LinkedinURL
	lead.Description = a.Description
	lead.Location = a.Location
	lead.Employees = a.Employees
	lead.Industry = a.Industry
	lead.AIInterestLevel = int(a.AIInterestLevel)
	lead.AIEvidence = a.AIEvidence
	lead.Notes = a.Notes
	lead.DecisionMaker = a.DecisionMaker

	score := int(a.LeadScore)
	lead.LeadScore = &score

	if a.IsQualified {
		// Manual statuses (Active, Converted, ...) are never overwritten
		// by a re-run.
		if lead.Status == entity.StatusNewLead || lead.Status == entity.StatusQualified {
			lead.Status = entity.StatusQualified
		}
	} else if lead.Status == entity.StatusQualified {
		// A re-run that no longer qualifies demotes back to New Lead.
		lead.Status = entity.StatusNewLead
	}

	lead.UpdatedAt = now
	lead.LastAnalyzedAt = &now
}
