// Package sanitize is the trust boundary between admin-authored content and
// anything rendered to visitors: image URLs are checked against an allow-list
// of media hosts and rich text is reduced to a fixed tag/attribute allow-list.
package sanitize

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/malabartrails/tours-backend/pkg/logger"
	"github.com/microcosm-cc/bluemonday"
)

const DefaultPlaceholderURL = "/images/placeholder-tour.jpg"

var (
	allowedElements = []string{
		"p", "br", "hr", "h2", "h3", "h4", "h5", "h6",
		"strong", "b", "em", "i", "u", "s", "small", "mark", "sub", "sup",
		"ul", "ol", "li", "dl", "dt", "dd",
		"blockquote", "pre", "code", "span", "div", "section",
		"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption",
		"a",
	}
	allowedSchemes = []string{"http", "https", "mailto", "tel"}
)

type Options struct {
	AllowedHosts        []string // exact hosts, or "*.example.com" for any subdomain
	AllowedPathPrefixes []string // relative paths such as "/images/"
	PlaceholderURL      string
}

// Sanitizer is safe for concurrent use once constructed.
type Sanitizer struct {
	hosts       map[string]struct{}
	wildcards   []string
	prefixes    []string
	placeholder string
	policy      *bluemonday.Policy
}

func New(opts Options) *Sanitizer {
	s := &Sanitizer{
		hosts:       make(map[string]struct{}),
		placeholder: opts.PlaceholderURL,
	}
	if s.placeholder == "" {
		s.placeholder = DefaultPlaceholderURL
	}

	for _, h := range opts.AllowedHosts {
		h = strings.ToLower(strings.TrimSpace(h))
		switch {
		case h == "":
		case strings.HasPrefix(h, "*."):
			s.wildcards = append(s.wildcards, h[1:])
		default:
			s.hosts[h] = struct{}{}
		}
	}
	for _, p := range opts.AllowedPathPrefixes {
		if p = strings.TrimSpace(p); strings.HasPrefix(p, "/") {
			s.prefixes = append(s.prefixes, p)
		}
	}

	policy := bluemonday.NewPolicy()
	policy.AllowElements(allowedElements...)
	policy.AllowAttrs("href", "title").OnElements("a")
	policy.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	policy.AllowURLSchemes(allowedSchemes...)
	policy.RequireParseableURLs(true)
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	s.policy = policy

	return s
}

func (s *Sanitizer) PlaceholderURL() string {
	return s.placeholder
}

// SanitizeImageURL returns the normalised URL and true when it may be rendered.
// Disallowed, relative-but-unlisted and malformed URLs return "", false.
func (s *Sanitizer) SanitizeImageURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.ContainsAny(raw, "\\\x00\r\n\t") {
		return "", false
	}

	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return s.sanitizeRelative(raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.User != nil || u.Host == "" {
		return "", false
	}
	if !s.hostAllowed(strings.ToLower(u.Hostname())) {
		return "", false
	}
	return u.String(), true
}

// ImageURLOrPlaceholder never fails: disallowed URLs become the placeholder asset.
func (s *Sanitizer) ImageURLOrPlaceholder(raw string) string {
	if clean, ok := s.SanitizeImageURL(raw); ok {
		return clean
	}
	return s.placeholder
}

func (s *Sanitizer) sanitizeRelative(raw string) (string, bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return "", false
	}
	if strings.Contains(u.Path, "..") {
		return "", false
	}
	for _, prefix := range s.prefixes {
		if strings.HasPrefix(u.Path, prefix) {
			return u.String(), true
		}
	}
	return "", false
}

func (s *Sanitizer) hostAllowed(host string) bool {
	if _, ok := s.hosts[host]; ok {
		return true
	}
	for _, suffix := range s.wildcards {
		if strings.HasSuffix(host, suffix) && len(host) > len(suffix) {
			return true
		}
	}
	return false
}

// SanitizeHTML strips markup to the allow-list, keeping the text of removed
// elements. Any failure yields "" rather than the raw input.
func (s *Sanitizer) SanitizeHTML(html string) (out string) {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	if !utf8.ValidString(html) {
		logger.Warn("Rejected rich text with invalid UTF-8", map[string]interface{}{
			"length": len(html),
		})
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("HTML sanitizer failed, dropping content", map[string]interface{}{
				"panic": r,
			})
			out = ""
		}
	}()

	return strings.TrimSpace(s.policy.Sanitize(html))
}
