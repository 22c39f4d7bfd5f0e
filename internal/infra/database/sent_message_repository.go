package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/supercells/supercells-api/internal/entity"
)

type SentMessageRepository struct {
	DB *sql.DB
}

func NewSentMessageRepository(db *sql.DB) *SentMessageRepository {
	return &SentMessageRepository{DB: db}
}

func (r *SentMessageRepository) Create(ctx context.Context, msg *entity.SentMessage) error {
	query := `
		INSERT INTO email_sent (id, user_id, lead_id, company_name, industry,
			message_type, message_content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		msg.ID,
		msg.UserID,
		nullString(msg.LeadID),
		msg.CompanyName,
		nullString(msg.Industry),
		msg.MessageType,
		msg.MessageContent,
		msg.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ Database error logging sent message: %v", err)
	}
	return err
}

// Delete exists only as the compensation for a failed send transaction.
func (r *SentMessageRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM email_sent WHERE id = $1`, id)
	return err
}

func (r *SentMessageRepository) FindByUser(ctx context.Context, userID string) ([]*entity.SentMessage, error) {
	query := `
		SELECT id, user_id, lead_id, company_name, industry, message_type, message_content, created_at
		FROM email_sent WHERE user_id = $1 ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []*entity.SentMessage{}
	for rows.Next() {
		var msg entity.SentMessage
		var leadID, industry sql.NullString
		err := rows.Scan(&msg.ID, &msg.UserID, &leadID, &msg.CompanyName,
			&industry, &msg.MessageType, &msg.MessageContent, &msg.CreatedAt)
		if err != nil {
			return nil, err
		}
		msg.LeadID = leadID.String
		msg.Industry = industry.String
		messages = append(messages, &msg)
	}
	return messages, rows.Err()
}

func (r *SentMessageRepository) ListLeadIDsWithMessages(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT DISTINCT lead_id FROM email_sent WHERE user_id = $1 AND lead_id IS NOT NULL`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
