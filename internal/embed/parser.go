package embed

import (
	"regexp"
	"strings"

	"campus_feed/internal/domain"
)

// Recognized internal reference paths. Order matters: the first pattern
// that matches anywhere in the text wins.
var refPatterns = []struct {
	typ domain.EmbedTargetType
	re  *regexp.Regexp
}{
	{domain.TargetPost, regexp.MustCompile(`(?i)/post/([a-z0-9_]+)`)},
	{domain.TargetArticle, regexp.MustCompile(`(?i)/article/([a-z0-9_]+)`)},
	{domain.TargetListing, regexp.MustCompile(`(?i)/marketplace/([a-z0-9_]+)`)},
	{domain.TargetPoll, regexp.MustCompile(`(?i)/poll/([a-z0-9_]+)`)},
}

var refStrip = regexp.MustCompile(`(?i)/\w+/[a-z0-9_]+`)

// ParseReference returns the first internal reference found in text, or
// nil when the text contains none. No reference is a no-op, not an error.
func ParseReference(text string) *domain.EmbedRef {
	for _, p := range refPatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			return &domain.EmbedRef{Type: p.typ, ID: m[1], URL: m[0]}
		}
	}
	return nil
}

// StripReferences removes all reference-shaped substrings, leaving the
// author's own text for the originality gates.
func StripReferences(text string) string {
	return strings.TrimSpace(refStrip.ReplaceAllString(text, ""))
}
