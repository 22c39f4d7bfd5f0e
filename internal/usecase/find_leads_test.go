package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/supercells/supercells-api/internal/entity"
	"github.com/supercells/supercells-api/internal/infra/integration/openai"
	"github.com/supercells/supercells-api/internal/usecase"
)

func TestFindLeadsSkipsDuplicatesAndFailures(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockUserRepo := new(MockUserRepository)
	mockResearch := new(MockResearchService)

	mockUserRepo.On("FindByID", ctx, "user-1").Return(nil, errors.New("no profile"))
	mockLeadRepo.On("ListCompanyNames", ctx, "user-1").Return([]string{"Tracked Co"}, nil)

	suggestions := []openai.LeadSuggestion{
		{CompanyName: "Fresh Co", Industry: "SaaS", LeadScore: 80},
		{CompanyName: "tracked co"}, // case-insensitive duplicate
		{CompanyName: ""},           // empty, skipped
		{CompanyName: "Flaky Co", LeadScore: 70},
	}
	mockResearch.On("FindLeads", ctx, "SaaS", "Berlin", entity.PersonaBrain, 10).Return(suggestions, nil)

	mockLeadRepo.On("Create", ctx, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.CompanyName == "Fresh Co"
	})).Return(nil)
	mockLeadRepo.On("Create", ctx, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.CompanyName == "Flaky Co"
	})).Return(errors.New("insert failed"))

	uc := usecase.NewFindLeadsUseCase(mockLeadRepo, mockUserRepo, mockResearch)

	output, err := uc.Execute(ctx, usecase.FindLeadsInput{
		UserID:   "user-1",
		Industry: "SaaS",
		Location: "Berlin",
	})

	assert.NoError(t, err)
	assert.Equal(t, 4, output.Requested)
	assert.Equal(t, 1, output.Inserted)
	assert.Len(t, output.Leads, 1)
	assert.Equal(t, "Fresh Co", output.Leads[0].CompanyName)
	assert.NotNil(t, output.Leads[0].LeadScore)
	assert.Equal(t, 80, *output.Leads[0].LeadScore)
}

func TestFindLeadsRequiresIndustryAndLocation(t *testing.T) {
	uc := usecase.NewFindLeadsUseCase(new(MockLeadRepository), new(MockUserRepository), new(MockResearchService))

	output, err := uc.Execute(context.Background(), usecase.FindLeadsInput{UserID: "user-1"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
}

func TestFindHighPotentialExcludesExisting(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockUserRepo := new(MockUserRepository)
	mockResearch := new(MockResearchService)

	existing := []string{"Tracked Co"}
	mockUserRepo.On("FindByID", ctx, "user-1").Return(&entity.User{ID: "user-1", Persona: entity.PersonaHandshake}, nil)
	mockLeadRepo.On("ListCompanyNames", ctx, "user-1").Return(existing, nil)

	mockResearch.On("FindHighPotentialLead", ctx, entity.PersonaHandshake, existing).Return(&openai.HighPotentialLead{
		LeadSuggestion: openai.LeadSuggestion{
			CompanyName: "Unicorn Labs",
			Industry:    "AI",
			LeadScore:   94,
		},
		EmailDraft: "Dear Unicorn Labs...",
	}, nil)
	mockLeadRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewFindHighPotentialUseCase(mockLeadRepo, mockUserRepo, mockResearch)

	output, err := uc.Execute(ctx, "user-1", "")

	assert.NoError(t, err)
	assert.Equal(t, "Unicorn Labs", output.Lead.CompanyName)
	assert.Equal(t, 94, *output.Lead.LeadScore)
	assert.Equal(t, "Dear Unicorn Labs...", output.EmailDraft)
}

func TestFindHighPotentialDefaultsPersonaWithoutProfileRow(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockUserRepo := new(MockUserRepository)
	mockResearch := new(MockResearchService)

	// A fresh user has no profile row yet: FindByID yields (nil, nil).
	mockUserRepo.On("FindByID", ctx, "user-1").Return(nil, nil)
	mockLeadRepo.On("ListCompanyNames", ctx, "user-1").Return([]string{}, nil)

	mockResearch.On("FindHighPotentialLead", ctx, entity.PersonaBrain, []string{}).Return(&openai.HighPotentialLead{
		LeadSuggestion: openai.LeadSuggestion{CompanyName: "Unicorn Labs", LeadScore: 92},
	}, nil)
	mockLeadRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewFindHighPotentialUseCase(mockLeadRepo, mockUserRepo, mockResearch)

	output, err := uc.Execute(ctx, "user-1", "")

	assert.NoError(t, err)
	assert.Equal(t, "Unicorn Labs", output.Lead.CompanyName)
}

func TestFindLeadsDefaultsPersonaWithoutProfileRow(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockUserRepo := new(MockUserRepository)
	mockResearch := new(MockResearchService)

	mockUserRepo.On("FindByID", ctx, "user-1").Return(nil, nil)
	mockLeadRepo.On("ListCompanyNames", ctx, "user-1").Return([]string{}, nil)

	mockResearch.On("FindLeads", ctx, "SaaS", "Berlin", entity.PersonaBrain, 10).Return([]openai.LeadSuggestion{}, nil)

	uc := usecase.NewFindLeadsUseCase(mockLeadRepo, mockUserRepo, mockResearch)

	output, err := uc.Execute(ctx, usecase.FindLeadsInput{
		UserID:   "user-1",
		Industry: "SaaS",
		Location: "Berlin",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, output.Inserted)
}

func TestFindLeadsCountBounds(t *testing.T) {
	uc := usecase.NewFindLeadsUseCase(new(MockLeadRepository), new(MockUserRepository), new(MockResearchService))

	for _, count := range []int{-1, 11} {
		_, err := uc.Execute(context.Background(), usecase.FindLeadsInput{
			UserID:   "user-1",
			Industry: "SaaS",
			Location: "Berlin",
			Count:    count,
		})
		assert.Error(t, err, "count %d", count)
		assert.True(t, usecase.IsDomainError(err))
	}
}

func TestFindHighPotentialRejectsKnownCompany(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockUserRepo := new(MockUserRepository)
	mockResearch := new(MockResearchService)

	existing := []string{"Tracked Co"}
	mockUserRepo.On("FindByID", ctx, "user-1").Return(nil, errors.New("no profile"))
	mockLeadRepo.On("ListCompanyNames", ctx, "user-1").Return(existing, nil)

	// The model ignored the exclusion list.
	mockResearch.On("FindHighPotentialLead", ctx, entity.PersonaBrain, existing).Return(&openai.HighPotentialLead{
		LeadSuggestion: openai.LeadSuggestion{CompanyName: "tracked co"},
	}, nil)

	uc := usecase.NewFindHighPotentialUseCase(mockLeadRepo, mockUserRepo, mockResearch)

	output, err := uc.Execute(ctx, "user-1", "")

	assert.Error(t, err)
	assert.Nil(t, output)
	mockLeadRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
