package usecase

import (
	"context"

	"github.com/supercells/supercells-api/internal/infra/integration/jigsawstack"
	"github.com/supercells/supercells-api/internal/infra/integration/openai"
	"github.com/supercells/supercells-api/internal/infra/queue"
	"github.com/supercells/supercells-api/internal/infra/scraper"
)

// ResearchService is the AI research collaborator. Responses are treated
// as untrusted JSON requiring parse-and-default.
type ResearchService interface {
	AnalyzeCompany(ctx context.Context, companyName, persona string) (*openai.CompanyAnalysis, error)
	AnalyzeCompanyContent(ctx context.Context, companyName, persona, content string) (*openai.CompanyAnalysis, error)
	FindLeads(ctx context.Context, industry, location, persona string, count int) ([]openai.LeadSuggestion, error)
	FindHighPotentialLead(ctx context.Context, persona string, excluded []string) (*openai.HighPotentialLead, error)
}

// MessageWriter is the AI message-generation collaborator.
type MessageWriter interface {
	GenerateMessage(ctx context.Context, input openai.GenerateMessageInput) (string, error)
}

// CompanySearcher is the hosted web-scraping collaborator behind
// POST /api/company/search.
type CompanySearcher interface {
	SearchCompany(ctx context.Context, companyName string) (*jigsawstack.CompanyInfo, error)
}

// WebsiteScraper extracts text from a company site for deep re-analysis.
type WebsiteScraper interface {
	Scrape(ctx context.Context, url string) ([]scraper.PageContent, error)
}

// EmailService delivers a copy of sent outreach email to the owner's inbox.
type EmailService interface {
	SendOutreachCopy(to, companyName, channel, content string) error
}

// QueueProducerInterface publishes async lead-discovery jobs.
type QueueProducerInterface interface {
	PublishDiscovery(ctx context.Context, job queue.DiscoveryJob) error
}
