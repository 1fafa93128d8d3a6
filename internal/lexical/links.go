package lexical

import (
	"net/url"
	"regexp"
	"strings"
)

// Link is one extracted URL with its suspicion assessment.
type Link struct {
	URL        string `json:"url"`
	Host       string `json:"host"`
	Suspicious bool   `json:"suspicious"`
	Reason     string `json:"reason,omitempty"`
}

// LinkResult summarizes all URLs found in the text.
type LinkResult struct {
	Links           []Link   `json:"links"`
	Count           int      `json:"count"`
	SuspiciousCount int      `json:"suspiciousCount"`
	SuspiciousURLs  []string `json:"suspiciousUrls"`
}

var (
	urlPattern    = regexp.MustCompile(`https?://[^\s<>"')\]]+`)
	ipHostPattern = regexp.MustCompile(`^\d{1,3}(\.\d{1,3}){3}$`)
)

// AnalyzeLinks extracts http(s) URLs and flags IP-literal hosts and known
// shortener domains.
func AnalyzeLinks(text string) LinkResult {
	res := LinkResult{Links: []Link{}, SuspiciousURLs: []string{}}

	for _, raw := range urlPattern.FindAllString(text, -1) {
		raw = strings.TrimRight(raw, ".,;:")
		link := Link{URL: raw}
		if u, err := url.Parse(raw); err == nil {
			link.Host = strings.ToLower(u.Hostname())
		}

		switch {
		case ipHostPattern.MatchString(link.Host):
			link.Suspicious = true
			link.Reason = "IP address host"
		case isShortener(link.Host):
			link.Suspicious = true
			link.Reason = "URL shortener"
		}

		res.Links = append(res.Links, link)
		if link.Suspicious {
			res.SuspiciousCount++
			res.SuspiciousURLs = append(res.SuspiciousURLs, link.URL)
		}
	}

	res.Count = len(res.Links)
	return res
}

func isShortener(host string) bool {
	for _, d := range shortenerDomains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
