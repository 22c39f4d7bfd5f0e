package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/supercells/supercells-api/internal/entity"
	"github.com/supercells/supercells-api/internal/usecase"
)

func TestGetCRMConfigDefaultsToEmpty(t *testing.T) {
	ctx := context.Background()

	mockSettingsRepo := new(MockSettingsRepository)
	mockSettingsRepo.On("GetCRMConfig", ctx, "user-1").Return(nil, nil)

	uc := usecase.NewSettingsUseCase(mockSettingsRepo, new(MockUserRepository))

	config, err := uc.GetCRMConfig(ctx, "user-1")

	assert.NoError(t, err)
	assert.NotNil(t, config)
	assert.Empty(t, config.HubspotAPIKey)
}

func TestSaveCRMConfigRequiresBody(t *testing.T) {
	uc := usecase.NewSettingsUseCase(new(MockSettingsRepository), new(MockUserRepository))

	err := uc.SaveCRMConfig(context.Background(), "user-1", nil)

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
}

func TestUpdateAvatarValidatesPersona(t *testing.T) {
	ctx := context.Background()

	mockUserRepo := new(MockUserRepository)
	mockUserRepo.On("UpdatePersona", ctx, "user-1", entity.PersonaTarget).Return(nil)

	uc := usecase.NewSettingsUseCase(new(MockSettingsRepository), mockUserRepo)

	assert.NoError(t, uc.UpdateAvatar(ctx, "user-1", entity.PersonaTarget))

	err := uc.UpdateAvatar(ctx, "user-1", "wizard")
	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	mockUserRepo.AssertNumberOfCalls(t, "UpdatePersona", 1)
}
