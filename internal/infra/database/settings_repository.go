package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/supercells/supercells-api/internal/entity"
)

type SettingsRepository struct {
	DB *sql.DB
}

func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

func (r *SettingsRepository) GetCRMConfig(ctx context.Context, userID string) (*entity.CRMConfig, error) {
	var raw []byte
	err := r.DB.QueryRowContext(ctx,
		`SELECT crm_config FROM user_settings WHERE user_id = $1`, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var config entity.CRMConfig
	if err := json.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("corrupt crm_config for user %s: %w", userID, err)
	}
	return &config, nil
}

func (r *SettingsRepository) SaveCRMConfig(ctx context.Context, userID string, config *entity.CRMConfig) error {
	raw, err := json.Marshal(config)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_settings (user_id, crm_config, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET crm_config = EXCLUDED.crm_config, updated_at = NOW()
	`
	_, err = r.DB.ExecContext(ctx, query, userID, raw)
	return err
}
