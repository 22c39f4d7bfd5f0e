package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultModel = "gpt-3.5-turbo"

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   defaultModel,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// AnalyzeCompany asks the model to research a single company and return
// the CompanyAnalysis JSON shape. The result is untrusted; the
// qualification workflow sanitizes it.
func (c *Client) AnalyzeCompany(ctx context.Context, companyName, persona string) (*CompanyAnalysis, error) {
	system := fmt.Sprintf(`%s

%s

Your task is to research the company %q and provide detailed information and analysis.

Based on your knowledge, provide:

1. Basic Information: website URL, LinkedIn company page URL, company description, location, employee count range, industry
2. AI Analysis: AI Interest Level (0-100), evidence of AI interest or technology adoption, overall Lead Score (0-100) based on the scoring criteria above, whether this lead should be automatically qualified, additional analysis notes
3. Recent Activity: recent AI-related activities or news, key technology initiatives, notable partnerships or projects
4. Decision Making: key decision maker information (if available)
5. Compatibility Assessment: companyProfileMatch, relationshipInfluence, budgetAlignment and businessNeedsMatch, each scored 0 to 100

%s`, personaPrompt(researchPrompts, persona), leadScoringCriteria, companyName, analysisFormat)

	content, err := c.chat(ctx, system, fmt.Sprintf("Research and analyze %s.", companyName), 0.1, 0)
	if err != nil {
		return nil, err
	}

	var analysis CompanyAnalysis
	if err := json.Unmarshal([]byte(extractJSON(content)), &analysis); err != nil {
		return nil, fmt.Errorf("unexpected analysis shape: %w", err)
	}
	return &analysis, nil
}

// AnalyzeCompanyContent is the scrape-assisted variant: extracted website
// text is handed to the model alongside the research prompt.
func (c *Client) AnalyzeCompanyContent(ctx context.Context, companyName, persona, content string) (*CompanyAnalysis, error) {
	system := fmt.Sprintf(`%s

%s

Your task is to analyze the company %q using the website content provided by the user, and provide detailed information and analysis.

%s`, personaPrompt(researchPrompts, persona), leadScoringCriteria, companyName, analysisFormat)

	user := fmt.Sprintf("Website content for %s:\n\n%s\n\nResearch and analyze %s.", companyName, content, companyName)

	out, err := c.chat(ctx, system, user, 0.1, 0)
	if err != nil {
		return nil, err
	}

	var analysis CompanyAnalysis
	if err := json.Unmarshal([]byte(extractJSON(out)), &analysis); err != nil {
		return nil, fmt.Errorf("unexpected analysis shape: %w", err)
	}
	return &analysis, nil
}

// FindLeads asks the model to invent plausible candidate companies for an
// industry and location.
func (c *Client) FindLeads(ctx context.Context, industry, location, persona string, count int) ([]LeadSuggestion, error) {
	if count <= 0 || count > 10 {
		count = 10
	}

	system := fmt.Sprintf(`%s

%s

Research Requirements:
1. Search across the entire internet, business directories, and industry databases
2. Focus on companies showing digital transformation potential
3. Look for recent news, press releases, and company announcements
4. Analyze company tech stacks and innovation initiatives
5. Consider market position and growth trajectory

CRITICAL REQUIREMENTS:
- Return EXACTLY %d companies
- Only include real, verifiable companies that can be found online
- Ensure all company names are accurate and currently in business
- Provide working website URLs when available
- Include specific evidence of technology needs or digital transformation initiatives
- Base lead scores on concrete evidence from company research
- Focus on companies that haven't been widely targeted by AI vendors

%s`, personaPrompt(researchPrompts, persona), leadScoringCriteria, count, suggestionFormat)

	user := fmt.Sprintf("Research and find %d companies in the %s industry in %s that would benefit from AI solutions.", count, industry, location)

	content, err := c.chat(ctx, system, user, 0.7, 0)
	if err != nil {
		return nil, err
	}

	var suggestions []LeadSuggestion
	if err := json.Unmarshal([]byte(extractJSON(content)), &suggestions); err != nil {
		return nil, fmt.Errorf("unexpected suggestions shape: %w", err)
	}
	return suggestions, nil
}

// FindHighPotentialLead asks for one >90-score candidate plus an email
// draft, excluding company names the user already tracks.
func (c *Client) FindHighPotentialLead(ctx context.Context, persona string, excluded []string) (*HighPotentialLead, error) {
	system := fmt.Sprintf(`%s

Your task is to identify ONE company with extremely high potential (lead score > 90) for AI solutions adoption.
The company should be:
- Actively seeking or implementing digital transformation
- Have clear budget and authority for technology decisions
- Show strong signals of AI interest or immediate needs
- Be at a critical decision point in their technology journey

Also draft a compelling, personalized email that:
- References specific company initiatives or pain points
- Demonstrates deep understanding of their industry
- Presents clear value proposition
- Has a strong but professional call to action

CRITICAL: Do not suggest any of these existing companies: %s

Format your response as a JSON object with these exact fields:
{
  "companyName": "string",
  "industry": "string",
  "location": "string",
  "website": "string",
  "description": "string",
  "employees": "string",
  "aiEvidence": "string",
  "leadScore": number,
  "emailDraft": "string"
}`, personaPrompt(researchPrompts, persona), strings.Join(excluded, ", "))

	content, err := c.chat(ctx, system, "Find one high-potential company and draft an engaging email.", 0.7, 0)
	if err != nil {
		return nil, err
	}

	var lead HighPotentialLead
	if err := json.Unmarshal([]byte(extractJSON(content)), &lead); err != nil {
		return nil, fmt.Errorf("unexpected lead shape: %w", err)
	}
	return &lead, nil
}

// GenerateMessage produces outreach copy. Length limits are communicated
// to the model only, never enforced here.
func (c *Client) GenerateMessage(ctx context.Context, input GenerateMessageInput) (string, error) {
	kind := "outreach email"
	limit := "max 200 words"
	maxTokens := 500
	if input.Type == "linkedin" {
		kind = "LinkedIn message"
		limit = "max 150 characters"
		maxTokens = 200
	}

	industry := input.Industry
	if industry == "" {
		industry = "technology"
	}

	system := fmt.Sprintf(`%s

Write an engaging, customized %s for %s in the %s industry.

%s
%s

The message should:
1. Be professional and engaging
2. Demonstrate understanding of their industry
3. Highlight relevant AI solutions
4. Include a clear call-to-action
5. Be concise (%s)`,
		personaPrompt(writingPrompts, input.Persona), kind, input.CompanyName, industry,
		orgSizePrompts[input.OrgSize], stylePrompts[input.Style], limit)

	user := fmt.Sprintf("Generate a %s %s message for %s.", input.Style, input.Type, input.CompanyName)

	return c.chat(ctx, system, user, 0.7, maxTokens)
}

// chat sends one system+user exchange and returns the first choice.
func (c *Client) chat(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error) {
	url := fmt.Sprintf("%s/chat/completions", c.baseURL)

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai rejected request (status %d): %s", resp.StatusCode, string(body))
	}

	var response chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode openai response: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return response.Choices[0].Message.Content, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Supercells/1.0")
}

// extractJSON strips the markdown code fences models sometimes wrap
// around JSON output.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
