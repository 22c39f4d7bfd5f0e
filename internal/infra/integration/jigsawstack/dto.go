package jigsawstack

// CompanyInfo is what /api/company/search returns to the front-end.
// Fields are best-effort; anything the scrape could not identify is empty.
type CompanyInfo struct {
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Employees   string `json:"employees,omitempty"`
}

// --- PAYLOADS: what the client sends to JigsawStack ---

type aiScrapeRequest struct {
	URL            string   `json:"url"`
	ElementPrompts []string `json:"element_prompts"`
}

// --- RESPONSE: what JigsawStack returns ---

type aiScrapeResponse struct {
	Success bool `json:"success"`
	Data    []struct {
		Selector string `json:"selector"`
		Results  []struct {
			Text string `json:"text"`
		} `json:"results"`
	} `json:"data"`
}
