package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lead statuses. "New Lead" and "Qualified" are set by the qualification
// workflow, "Converted" by the outreach workflow, the rest manually.
const (
	StatusNewLead   = "New Lead"
	StatusQualified = "Qualified"
	StatusActive    = "Active"
	StatusConverted = "Converted"
	StatusClosed    = "Closed"
	StatusLost      = "Lost"
)

var ErrLeadNotFound = errors.New("lead not found")
var ErrCompanyAlreadyExists = errors.New("company already exists for this user")

type Lead struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	CompanyName     string     `json:"company_name"`
	Industry        string     `json:"industry,omitempty"`
	Location        string     `json:"location,omitempty"`
	Employees       string     `json:"employees,omitempty"` // bucket string, e.g. "11-50"
	Website         string     `json:"website,omitempty"`
	LinkedinURL     string     `json:"linkedin_url,omitempty"`
	Description     string     `json:"description,omitempty"`
	Status          string     `json:"status"`
	LeadScore       *int       `json:"lead_score,omitempty"` // 0-100
	AIInterestLevel int        `json:"ai_interest_level"`
	AIEvidence      string     `json:"ai_evidence,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	DecisionMaker   string     `json:"decision_maker,omitempty"`
	LogoURL         string     `json:"logo_url,omitempty"` // derived at read time, never stored
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	LastAnalyzedAt  *time.Time `json:"last_analyzed_at,omitempty"`
}

// NewLead creates a bare lead owned by a user. Enrichment fields are
// filled in afterwards by the qualification workflow.
func NewLead(userID, companyName string) (*Lead, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	if companyName == "" {
		return nil, errors.New("company_name is required")
	}

	now := time.Now()
	return &Lead{
		ID:          uuid.New().String(),
		UserID:      userID,
		CompanyName: companyName,
		Status:      StatusNewLead,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ValidStatus reports whether s is one of the known lead statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNewLead, StatusQualified, StatusActive, StatusConverted, StatusClosed, StatusLost:
		return true
	}
	return false
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	FindByUser(ctx context.Context, userID string) ([]*Lead, error)
	ListCompanyNames(ctx context.Context, userID string) ([]string, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateAnalysis(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, id string) error
}
