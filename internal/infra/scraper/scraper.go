package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// maxLinkedPages caps how many relevant linked pages are followed.
const maxLinkedPages = 3

// Paths and link texts worth following when profiling a company site.
var relevantPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)about`),
	regexp.MustCompile(`(?i)product`),
	regexp.MustCompile(`(?i)service`),
	regexp.MustCompile(`(?i)solution`),
	regexp.MustCompile(`(?i)technology`),
	regexp.MustCompile(`(?i)ai`),
	regexp.MustCompile(`(?i)machine-learning`),
	regexp.MustCompile(`(?i)ml`),
	regexp.MustCompile(`(?i)artificial-intelligence`),
	regexp.MustCompile(`(?i)career`),
	regexp.MustCompile(`(?i)job`),
}

// PageContent is the extracted text of one scraped page.
type PageContent struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type Scraper struct {
	http *http.Client
}

func NewScraper() *Scraper {
	return &Scraper{
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Scrape fetches the site's main page plus up to three relevant linked
// pages (about/product/careers/...). Failures on linked pages are
// tolerated; the main page failing fails the whole scrape.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) ([]PageContent, error) {
	fullURL := rawURL
	if !strings.HasPrefix(fullURL, "http") {
		fullURL = "https://" + fullURL
	}

	doc, err := s.fetch(ctx, fullURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch website: %w", err)
	}

	parsed, err := url.Parse(fullURL)
	if err != nil {
		return nil, err
	}
	baseURL := parsed.Scheme + "://" + parsed.Hostname()

	pages := []PageContent{{
		URL:   fullURL,
		Title: strings.TrimSpace(doc.Find("title").Text()),
		Text:  cleanText(doc.Find("body").Text()),
	}}

	for _, link := range relevantLinks(doc, baseURL, fullURL) {
		linkDoc, err := s.fetch(ctx, link.URL)
		if err != nil {
			// Linked pages are best effort.
			continue
		}
		link.Text = cleanText(linkDoc.Find("body").Text())
		if link.Text != "" {
			pages = append(pages, link)
		}
	}

	return pages, nil
}

func (s *Scraper) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d %s", resp.StatusCode, resp.Status)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// relevantLinks collects up to maxLinkedPages distinct links whose href
// or text matches one of the relevant patterns.
func relevantLinks(doc *goquery.Document, baseURL, selfURL string) []PageContent {
	var links []PageContent
	seen := map[string]bool{selfURL: true}

	doc.Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok || href == "" || strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "tel:") {
			return true
		}

		linkText := strings.TrimSpace(sel.Text())
		if !isRelevant(href) && !isRelevant(linkText) {
			return true
		}

		absolute := href
		if !strings.HasPrefix(href, "http") {
			resolved, err := url.Parse(baseURL)
			if err != nil {
				return true
			}
			ref, err := url.Parse(href)
			if err != nil {
				return true
			}
			absolute = resolved.ResolveReference(ref).String()
		}

		if seen[absolute] {
			return true
		}
		seen[absolute] = true

		title := linkText
		if title == "" {
			title = "Linked Page"
		}
		links = append(links, PageContent{URL: absolute, Title: title})

		return len(links) < maxLinkedPages
	})

	return links
}

func isRelevant(s string) bool {
	if s == "" {
		return false
	}
	for _, p := range relevantPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

var whitespace = regexp.MustCompile(`\s+`)

func cleanText(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}
