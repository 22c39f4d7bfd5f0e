package jigsawstack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: "https://api.jigsawstack.com/v1",
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchCompany runs an AI scrape over a web search for the company name
// and picks out website, description, location and employee count.
func (c *Client) SearchCompany(ctx context.Context, companyName string) (*CompanyInfo, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("jigsawstack not configured")
	}

	payload := aiScrapeRequest{
		URL: fmt.Sprintf("https://www.google.com/search?q=%s", url.QueryEscape(companyName)),
		ElementPrompts: []string{
			"Company website URL",
			"Company description",
			"Company location",
			"Number of employees",
		},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scrape request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/ai/scrape", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jigsawstack request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("jigsawstack rejected request (status %d): %s", resp.StatusCode, string(body))
	}

	var response aiScrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode jigsawstack response: %w", err)
	}

	return pickCompanyInfo(&response), nil
}

// pickCompanyInfo applies the same field heuristics the scrape prompt
// implies: a URL-looking result is the website, a long paragraph is the
// description, a comma-separated value is the location, and anything
// mentioning employees is the headcount.
func pickCompanyInfo(resp *aiScrapeResponse) *CompanyInfo {
	info := &CompanyInfo{}

	for _, item := range resp.Data {
		if len(item.Results) == 0 {
			continue
		}
		text := strings.TrimSpace(item.Results[0].Text)
		if text == "" {
			continue
		}

		switch {
		case info.Website == "" && strings.Contains(text, "http"):
			info.Website = text
		case info.Description == "" && len(text) > 100:
			info.Description = text
		case info.Employees == "" && strings.Contains(strings.ToLower(text), "employees"):
			info.Employees = text
		case info.Location == "" && strings.Contains(text, ","):
			info.Location = text
		}
	}

	return info
}
