// Package spam rejects external links and near-empty link-farming text
// before any embed or ranking logic runs. Both checks are pure functions
// of the text.
package spam

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"campus_feed/internal/domain"
	"campus_feed/internal/embed"
)

var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https?://\S+`),
	regexp.MustCompile(`(?i)www\.\S+`),
	regexp.MustCompile(`(?i)[a-z0-9-]+\.(com|net|org|io|app|co|xyz|link|site)\S*`),
}

var internalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/post/[a-z0-9_]+`),
	regexp.MustCompile(`(?i)/article/[a-z0-9_]+`),
	regexp.MustCompile(`(?i)/notes/[a-z0-9_]+`),
	regexp.MustCompile(`(?i)/poll/[a-z0-9_]+`),
}

// checkedFields are scanned in this order; the first offending field is
// reported.
var checkedFields = []string{"body", "title", "description", "comment"}

// ContainsExternalURL reports whether text holds a URL-shaped substring
// that is not one of the internal reference patterns.
func ContainsExternalURL(text string) bool {
	if text == "" {
		return false
	}
	for _, pattern := range urlPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			internal := false
			for _, ip := range internalPatterns {
				if ip.MatchString(match) {
					internal = true
					break
				}
			}
			if !internal {
				return true
			}
		}
	}
	return false
}

// Gate is the anti-spam policy for designated text fields.
type Gate struct {
	minOriginalText int
}

func NewGate(minOriginalText int) *Gate {
	if minOriginalText == 0 {
		minOriginalText = 10
	}
	return &Gate{minOriginalText: minOriginalText}
}

// CheckFields rejects the whole request when any designated field carries
// an external URL.
func (g *Gate) CheckFields(fields map[string]string) error {
	for _, field := range checkedFields {
		value, ok := fields[field]
		if !ok || value == "" {
			continue
		}
		if ContainsExternalURL(value) {
			return domain.NewErrorWithDetails(
				domain.KindExternalLinksNotAllowed,
				"External links are not supported. You can reference internal content using /post/{id}, /article/{id}, /notes/{id}, or /poll/{id}.",
				map[string]any{"field": field},
			)
		}
	}
	return nil
}

// CheckLinkFarming rejects text that is mostly references with too little
// original content. The threshold is deliberately smaller than the embed
// validator's originality minimum; the two gates stay separate.
func (g *Gate) CheckLinkFarming(text string) error {
	if text == "" {
		return nil
	}
	remaining := utf8.RuneCountInString(embed.StripReferences(text))
	if remaining < g.minOriginalText {
		return domain.NewErrorWithDetails(
			domain.KindInsufficientOriginalText,
			fmt.Sprintf("Your post must include at least %d characters of original text besides any references.", g.minOriginalText),
			map[string]any{"minimum": g.minOriginalText, "current": remaining},
		)
	}
	return nil
}
