package clearbit

import (
	"net/url"
	"strings"
)

// LogoURL derives a company logo URL from its website. Deterministic,
// unauthenticated and best-effort: the front-end tolerates a 404 and
// falls back to a placeholder. Returns "" for a missing or unparseable
// website.
func LogoURL(website string) string {
	website = strings.TrimSpace(website)
	if website == "" {
		return ""
	}
	if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
		website = "https://" + website
	}

	u, err := url.Parse(website)
	if err != nil || u.Hostname() == "" {
		return ""
	}

	return "https://logo.clearbit.com/" + u.Hostname()
}
