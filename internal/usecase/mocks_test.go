package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/supercells/supercells-api/internal/entity"
	"github.com/supercells/supercells-api/internal/infra/integration/openai"
	"github.com/supercells/supercells-api/internal/infra/scraper"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Lead, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListCompanyNames(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateAnalysis(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Upsert(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePersona(ctx context.Context, userID, persona string) error {
	args := m.Called(ctx, userID, persona)
	return args.Error(0)
}

// MockSentMessageRepository
type MockSentMessageRepository struct {
	mock.Mock
}

func (m *MockSentMessageRepository) Create(ctx context.Context, msg *entity.SentMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockSentMessageRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSentMessageRepository) FindByUser(ctx context.Context, userID string) ([]*entity.SentMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.SentMessage), args.Error(1)
}

func (m *MockSentMessageRepository) ListLeadIDsWithMessages(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockSettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetCRMConfig(ctx context.Context, userID string) (*entity.CRMConfig, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CRMConfig), args.Error(1)
}

func (m *MockSettingsRepository) SaveCRMConfig(ctx context.Context, userID string, config *entity.CRMConfig) error {
	args := m.Called(ctx, userID, config)
	return args.Error(0)
}

// MockResearchService
type MockResearchService struct {
	mock.Mock
}

func (m *MockResearchService) AnalyzeCompany(ctx context.Context, companyName, persona string) (*openai.CompanyAnalysis, error) {
	args := m.Called(ctx, companyName, persona)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*openai.CompanyAnalysis), args.Error(1)
}

func (m *MockResearchService) AnalyzeCompanyContent(ctx context.Context, companyName, persona, content string) (*openai.CompanyAnalysis, error) {
	args := m.Called(ctx, companyName, persona, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*openai.CompanyAnalysis), args.Error(1)
}

func (m *MockResearchService) FindLeads(ctx context.Context, industry, location, persona string, count int) ([]openai.LeadSuggestion, error) {
	args := m.Called(ctx, industry, location, persona, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]openai.LeadSuggestion), args.Error(1)
}

func (m *MockResearchService) FindHighPotentialLead(ctx context.Context, persona string, excluded []string) (*openai.HighPotentialLead, error) {
	args := m.Called(ctx, persona, excluded)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*openai.HighPotentialLead), args.Error(1)
}

// MockMessageWriter
type MockMessageWriter struct {
	mock.Mock
}

func (m *MockMessageWriter) GenerateMessage(ctx context.Context, input openai.GenerateMessageInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

// MockWebsiteScraper
type MockWebsiteScraper struct {
	mock.Mock
}

func (m *MockWebsiteScraper) Scrape(ctx context.Context, url string) ([]scraper.PageContent, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]scraper.PageContent), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendOutreachCopy(to, companyName, channel, content string) error {
	args := m.Called(to, companyName, channel, content)
	return args.Error(0)
}
