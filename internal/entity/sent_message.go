package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Outreach channels.
const (
	MessageTypeEmail    = "email"
	MessageTypeLinkedin = "linkedin"
)

// SentMessage is the immutable record of an outreach send. Company name
// and industry are snapshots, so the record survives lead deletion.
type SentMessage struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	LeadID         string    `json:"lead_id,omitempty"` // soft reference
	CompanyName    string    `json:"company_name"`
	Industry       string    `json:"industry,omitempty"`
	MessageType    string    `json:"message_type"`
	MessageContent string    `json:"message_content"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewSentMessage(userID string, lead *Lead, messageType, content string) (*SentMessage, error) {
	if userID == "" {
		return nil, errors.New("user_id is required")
	}
	if lead == nil {
		return nil, errors.New("lead is required")
	}
	if messageType != MessageTypeEmail && messageType != MessageTypeLinkedin {
		return nil, errors.New("message_type must be email or linkedin")
	}
	if content == "" {
		return nil, errors.New("message_content is required")
	}

	return &SentMessage{
		ID:             uuid.New().String(),
		UserID:         userID,
		LeadID:         lead.ID,
		CompanyName:    lead.CompanyName,
		Industry:       lead.Industry,
		MessageType:    messageType,
		MessageContent: content,
		CreatedAt:      time.Now(),
	}, nil
}

type SentMessageRepositoryInterface interface {
	Create(ctx context.Context, msg *SentMessage) error
	Delete(ctx context.Context, id string) error
	FindByUser(ctx context.Context, userID string) ([]*SentMessage, error)
	// ListLeadIDsWithMessages returns the distinct lead ids the user has
	// already messaged. Used by the repair pass on lead listing.
	ListLeadIDsWithMessages(ctx context.Context, userID string) ([]string, error)
}
