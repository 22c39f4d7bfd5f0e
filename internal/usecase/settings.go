package usecase

import (
	"context"

	"github.com/supercells/supercells-api/internal/entity"
)

// SettingsUseCase covers the per-user settings blob (CRM keys) and the
// avatar persona switch.
type SettingsUseCase struct {
	SettingsRepo entity.SettingsRepositoryInterface
	UserRepo     entity.UserRepositoryInterface
}

func NewSettingsUseCase(
	settingsRepo entity.SettingsRepositoryInterface,
	userRepo entity.UserRepositoryInterface,
) *SettingsUseCase {
	return &SettingsUseCase{SettingsRepo: settingsRepo, UserRepo: userRepo}
}

func (uc *SettingsUseCase) GetCRMConfig(ctx context.Context, userID string) (*entity.CRMConfig, error) {
	config, err := uc.SettingsRepo.GetCRMConfig(ctx, userID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load CRM config: " + err.Error(),
		}
	}
	if config == nil {
		config = &entity.CRMConfig{}
	}
	return config, nil
}

func (uc *SettingsUseCase) SaveCRMConfig(ctx context.Context, userID string, config *entity.CRMConfig) error {
	if config == nil {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "config is required"}
	}
	if err := uc.SettingsRepo.SaveCRMConfig(ctx, userID, config); err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to save CRM config: " + err.Error(),
		}
	}
	return nil
}

func (uc *SettingsUseCase) UpdateAvatar(ctx context.Context, userID, persona string) error {
	if !entity.ValidPersona(persona) {
		return &DomainError{Code: "INVALID_PERSONA", Message: "persona must be brain, target or handshake"}
	}
	if err := uc.UserRepo.UpdatePersona(ctx, userID, persona); err != nil {
		return &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to update avatar: " + err.Error(),
		}
	}
	return nil
}
