package entity

import (
	"context"
	"time"
)

// Avatar personas. Each one selects a different prompt personality for
// the research and outreach collaborators.
const (
	PersonaBrain     = "brain"
	PersonaTarget    = "target"
	PersonaHandshake = "handshake"
)

// ValidPersona reports whether p is a known avatar persona.
func ValidPersona(p string) bool {
	return p == PersonaBrain || p == PersonaTarget || p == PersonaHandshake
}

// User mirrors the hosted auth identity plus the profile bits we own
// (avatar persona, display name). Identity lifecycle lives in the auth
// provider; we only upsert the profile row on first sight.
type User struct {
	ID        string    `json:"id"` // auth identity id
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Persona   string    `json:"persona"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session is the authenticated caller, extracted from the hosted-auth
// token. Every workflow takes the user id from here explicitly.
type Session struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

type UserRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*User, error)
	Upsert(ctx context.Context, user *User) error
	UpdatePersona(ctx context.Context, userID, persona string) error
}
