package spam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_feed/internal/domain"
)

func TestContainsExternalURL(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		external bool
	}{
		{"plain text", "meet me at the library after class", false},
		{"scheme url", "visit https://example.com/page now", true},
		{"http url", "http://spam.example", true},
		{"www url", "check www.spam-site.net please", true},
		{"bare domain", "buy from cheapstuff.com today", true},
		{"xyz domain", "see my-site.xyz", true},
		{"internal post ref", "look at /post/fp_abc123", false},
		{"internal notes ref", "download /notes/nt_9", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.external, ContainsExternalURL(tt.text))
		})
	}
}

func TestGate_CheckFields(t *testing.T) {
	g := NewGate(10)

	err := g.CheckFields(map[string]string{
		"body":  "all good here, nothing external",
		"title": "fine title",
	})
	assert.NoError(t, err)

	err = g.CheckFields(map[string]string{
		"body":  "no links in the body",
		"title": "go to www.elsewhere.org",
	})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExternalLinksNotAllowed))

	var derr *domain.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "title", derr.Details["field"])
}

func TestGate_CheckFields_WholeRequestFails(t *testing.T) {
	g := NewGate(10)

	// A single offending field rejects the request even when others pass.
	err := g.CheckFields(map[string]string{
		"body":        "clean body text here",
		"description": "https://external.example/ref",
	})
	assert.True(t, domain.IsKind(err, domain.KindExternalLinksNotAllowed))
}

func TestGate_CheckLinkFarming(t *testing.T) {
	g := NewGate(10)

	// 9 original characters around a reference fails.
	err := g.CheckLinkFarming("/post/fp_1 ninechars")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInsufficientOriginalText))

	// 10 passes.
	assert.NoError(t, g.CheckLinkFarming("/post/fp_1 exactlyten"))

	// Plain text above the threshold passes.
	assert.NoError(t, g.CheckLinkFarming("hello world"))

	// Empty text is not link farming.
	assert.NoError(t, g.CheckLinkFarming(""))
}
