package openai

// --- PAYLOADS: what the client sends to the chat completions API ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

// --- RESPONSE: what the API returns ---

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// CompatibilityMetrics are the model's 0-100 sub-scores. Treated as
// untrusted: missing fields decode to zero and the workflow defaults them.
type CompatibilityMetrics struct {
	CompanyProfileMatch   float64 `json:"companyProfileMatch"`
	RelationshipInfluence float64 `json:"relationshipInfluence"`
	BudgetAlignment       float64 `json:"budgetAlignment"`
	BusinessNeedsMatch    float64 `json:"businessNeedsMatch"`
}

// CompanyAnalysis is the JSON shape the research prompt asks the model
// to produce for a single company.
type CompanyAnalysis struct {
	Website              string               `json:"website"`
	LinkedinURL          string               `json:"linkedinUrl"`
	Description          string               `json:"description"`
	Location             string               `json:"location"`
	Employees            string               `json:"employees"`
	Industry             string               `json:"industry"`
	AIInterestLevel      float64              `json:"aiInterestLevel"`
	AIEvidence           string               `json:"aiEvidence"`
	LeadScore            float64              `json:"leadScore"`
	IsQualified          bool                 `json:"isQualified"`
	Notes                string               `json:"notes"`
	RecentActivity       []string             `json:"recentActivity"`
	DecisionMaker        string               `json:"decisionMaker"`
	CompatibilityMetrics CompatibilityMetrics `json:"compatibilityMetrics"`
}

// LeadSuggestion is one invented candidate from the discovery prompts.
type LeadSuggestion struct {
	CompanyName string  `json:"companyName"`
	Industry    string  `json:"industry"`
	Location    string  `json:"location"`
	Website     string  `json:"website"`
	LinkedinURL string  `json:"linkedinUrl"`
	Description string  `json:"description"`
	Employees   string  `json:"employees"`
	AIEvidence  string  `json:"aiEvidence"`
	LeadScore   float64 `json:"leadScore"`
}

// HighPotentialLead is a single >90-score candidate plus a ready email draft.
type HighPotentialLead struct {
	LeadSuggestion
	EmailDraft string `json:"emailDraft"`
}

// GenerateMessageInput carries everything the writing prompt needs. The
// organization size is classified by the outreach workflow, not here.
type GenerateMessageInput struct {
	CompanyName string
	Industry    string
	Style       string // confident | empathetic | collaborative | inspirational | authoritative
	Type        string // email | linkedin
	Persona     string // brain | target | handshake
	OrgSize     string // Startup | SME | Enterprise
}
