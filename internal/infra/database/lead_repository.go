package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"
	"github.com/supercells/supercells-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, user_id, company_name, industry, location, employees, website,
	linkedin_url, description, status, lead_score, ai_interest_level, ai_evidence,
	notes, decision_maker, created_at, updated_at, last_analyzed_at`

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, user_id, company_name, industry, location, employees,
			website, linkedin_url, description, status, lead_score, ai_interest_level,
			ai_evidence, notes, decision_maker, created_at, updated_at, last_analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.UserID,
		lead.CompanyName,
		nullString(lead.Industry),
		nullString(lead.Location),
		nullString(lead.Employees),
		nullString(lead.Website),
		nullString(lead.LinkedinURL),
		nullString(lead.Description),
		lead.Status,
		lead.LeadScore,
		lead.AIInterestLevel,
		nullString(lead.AIEvidence),
		nullString(lead.Notes),
		nullString(lead.DecisionMaker),
		lead.CreatedAt,
		lead.UpdatedAt,
		lead.LastAnalyzedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrCompanyAlreadyExists
		}
		log.Printf("❌ Database error creating lead: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) ListCompanyNames(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT company_name FROM leads WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

// UpdateAnalysis overwrites the enrichment fields produced by a re-run.
func (r *LeadRepository) UpdateAnalysis(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET
			industry = $1, location = $2, employees = $3, website = $4,
			linkedin_url = $5, description = $6, status = $7, lead_score = $8,
			ai_interest_level = $9, ai_evidence = $10, notes = $11,
			decision_maker = $12, updated_at = $13, last_analyzed_at = $14
		WHERE id = $15
	`

	result, err := r.DB.ExecContext(ctx, query,
		nullString(lead.Industry),
		nullString(lead.Location),
		nullString(lead.Employees),
		nullString(lead.Website),
		nullString(lead.LinkedinURL),
		nullString(lead.Description),
		lead.Status,
		lead.LeadScore,
		lead.AIInterestLevel,
		nullString(lead.AIEvidence),
		nullString(lead.Notes),
		nullString(lead.DecisionMaker),
		lead.UpdatedAt,
		lead.LastAnalyzedAt,
		lead.ID,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var industry, location, employees, website, linkedinURL, description,
		aiEvidence, notes, decisionMaker sql.NullString
	var leadScore sql.NullInt64
	var lastAnalyzed sql.NullTime

	err := row.Scan(
		&lead.ID,
		&lead.UserID,
		&lead.CompanyName,
		&industry,
		&location,
		&employees,
		&website,
		&linkedinURL,
		&description,
		&lead.Status,
		&leadScore,
		&lead.AIInterestLevel,
		&aiEvidence,
		&notes,
		&decisionMaker,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&lastAnalyzed,
	)
	if err != nil {
		return nil, err
	}

	lead.Industry = industry.String
	lead.Location = location.String
	lead.Employees = employees.String
	lead.Website = website.String
	lead.LinkedinURL = linkedinURL.String
	lead.Description = description.String
	lead.AIEvidence = aiEvidence.String
	lead.Notes = notes.String
	lead.DecisionMaker = decisionMaker.String
	if leadScore.Valid {
		score := int(leadScore.Int64)
		lead.LeadScore = &score
	}
	if lastAnalyzed.Valid {
		t := lastAnalyzed.Time
		lead.LastAnalyzedAt = &t
	}

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
