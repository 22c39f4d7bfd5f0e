package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/supercells/supercells-api/internal/entity"
	"github.com/supercells/supercells-api/internal/usecase"
)

func score(v int) *int { return &v }

func TestApplyFiltersEmptyIsIdentity(t *testing.T) {
	leads := []*entity.Lead{
		{ID: "a", Industry: "SaaS"},
		{ID: "b", Industry: "Fintech"},
	}

	filtered := usecase.ApplyFilters(leads, usecase.LeadFilters{})

	assert.Equal(t, leads, filtered)
}

func TestApplyFiltersIdempotent(t *testing.T) {
	leads := []*entity.Lead{
		{ID: "a", Industry: "SaaS", LeadScore: score(85)},
		{ID: "b", Industry: "SaaS", LeadScore: score(40)},
		{ID: "c", Industry: "Fintech", LeadScore: score(90)},
	}
	filters := usecase.LeadFilters{Industry: "SaaS", MinScore: 50}

	once := usecase.ApplyFilters(leads, filters)
	twice := usecase.ApplyFilters(once, filters)

	assert.Equal(t, once, twice)
	assert.Len(t, once, 1)
	assert.Equal(t, "a", once[0].ID)
}

func TestApplyFiltersMinScoreExcludesUnscored(t *testing.T) {
	leads := []*entity.Lead{
		{ID: "unscored"},
		{ID: "low", LeadScore: score(50)},
		{ID: "mid", LeadScore: score(85)},
		{ID: "high", LeadScore: score(90)},
	}

	filtered := usecase.ApplyFilters(leads, usecase.LeadFilters{MinScore: 80})

	assert.Len(t, filtered, 2)
	assert.Equal(t, "mid", filtered[0].ID)
	assert.Equal(t, "high", filtered[1].ID)
}

func TestApplyFiltersEmployeeRange(t *testing.T) {
	leads := []*entity.Lead{
		{ID: "startup", Employees: "11-50"},
		{ID: "mid", Employees: "51-200"},
		{ID: "big", Employees: "501+"},
		{ID: "unparseable", Employees: "unknown"},
	}

	filtered := usecase.ApplyFilters(leads, usecase.LeadFilters{EmployeeRange: "51-200"})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "mid", filtered[0].ID)

	// Open-ended ranges keep everything at or above the floor.
	filtered = usecase.ApplyFilters(leads, usecase.LeadFilters{EmployeeRange: "51-999999"})
	assert.Len(t, filtered, 2)
}

func TestApplyFiltersConjunctive(t *testing.T) {
	leads := []*entity.Lead{
		{ID: "a", Industry: "SaaS", Location: "Berlin", LeadScore: score(88)},
		{ID: "b", Industry: "SaaS", Location: "Munich", LeadScore: score(88)},
		{ID: "c", Industry: "Fintech", Location: "Berlin", LeadScore: score(88)},
	}

	filtered := usecase.ApplyFilters(leads, usecase.LeadFilters{
		Industry: "SaaS",
		Location: "Berlin",
		MinScore: 80,
	})

	assert.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)
}

func TestListLeadsRepairsHalfFinishedSend(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockMsgRepo := new(MockSentMessageRepository)

	leads := []*entity.Lead{
		{ID: "messaged", UserID: "user-1", Status: entity.StatusQualified},
		{ID: "closed", UserID: "user-1", Status: entity.StatusClosed},
		{ID: "untouched", UserID: "user-1", Status: entity.StatusNewLead},
	}

	mockLeadRepo.On("FindByUser", ctx, "user-1").Return(leads, nil)
	// "closed" also has messages but terminal statuses are left alone.
	mockMsgRepo.On("ListLeadIDsWithMessages", ctx, "user-1").Return([]string{"messaged", "closed"}, nil)
	mockLeadRepo.On("UpdateStatus", ctx, "messaged", entity.StatusConverted).Return(nil)

	uc := usecase.NewListLeadsUseCase(mockLeadRepo, mockMsgRepo)

	result, err := uc.Execute(ctx, "user-1", usecase.LeadFilters{})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusConverted, result[0].Status)
	assert.Equal(t, entity.StatusClosed, result[1].Status)
	assert.Equal(t, entity.StatusNewLead, result[2].Status)

	mockLeadRepo.AssertNumberOfCalls(t, "UpdateStatus", 1)
}

func TestListLeadsDerivesLogoFromWebsite(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockMsgRepo := new(MockSentMessageRepository)

	leads := []*entity.Lead{
		{ID: "a", UserID: "user-1", Website: "https://acme.com/about"},
		{ID: "b", UserID: "user-1"},
	}

	mockLeadRepo.On("FindByUser", ctx, "user-1").Return(leads, nil)
	mockMsgRepo.On("ListLeadIDsWithMessages", ctx, "user-1").Return([]string{}, nil)

	uc := usecase.NewListLeadsUseCase(mockLeadRepo, mockMsgRepo)

	result, err := uc.Execute(ctx, "user-1", usecase.LeadFilters{})

	assert.NoError(t, err)
	assert.Equal(t, "https://logo.clearbit.com/acme.com", result[0].LogoURL)
	assert.Empty(t, result[1].LogoURL)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc := usecase.NewUpdateStatusUseCase(new(MockLeadRepository))

	err := uc.Execute(context.Background(), "user-1", "lead-1", "Imaginary")

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
}

func TestDeleteLeadOwnership(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockLeadRepo.On("FindByID", ctx, "lead-1").Return(&entity.Lead{ID: "lead-1", UserID: "someone-else"}, nil)

	uc := usecase.NewDeleteLeadUseCase(mockLeadRepo)

	err := uc.Execute(ctx, "user-1", "lead-1")

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	mockLeadRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
