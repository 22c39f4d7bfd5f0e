package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/supercells/supercells-api/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	query := `
		SELECT id, name, email, avatar_url, persona, created_at, updated_at
		FROM users WHERE id = $1
	`

	var user entity.User
	var name, email, avatarURL, persona sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &name, &email, &avatarURL, &persona, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	user.Name = name.String
	user.Email = email.String
	user.AvatarURL = avatarURL.String
	user.Persona = persona.String
	return &user, nil
}

// Upsert creates the profile row on first sight and refreshes the
// identity fields afterwards. The persona is never overwritten here.
func (r *UserRepository) Upsert(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, avatar_url, persona, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = NOW()
	`

	persona := user.Persona
	if persona == "" {
		persona = entity.PersonaBrain
	}

	_, err := r.DB.ExecContext(ctx, query,
		user.ID, nullString(user.Name), nullString(user.Email),
		nullString(user.AvatarURL), persona)
	return err
}

func (r *UserRepository) UpdatePersona(ctx context.Context, userID, persona string) error {
	query := `
		INSERT INTO users (id, persona, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET persona = EXCLUDED.persona, updated_at = NOW()
	`
	_, err := r.DB.ExecContext(ctx, query, userID, persona)
	return err
}
