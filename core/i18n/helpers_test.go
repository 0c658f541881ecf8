package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emmydush/businessos/core/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		expected  string
	}{
		{
			name:      "empty header returns first available",
			header:    "",
			available: []string{"en", "fr"},
			expected:  "en",
		},
		{
			name:      "empty available returns empty",
			header:    "en-US,en;q=0.9",
			available: []string{},
			expected:  "",
		},
		{
			name:      "exact match",
			header:    "fr",
			available: []string{"en", "fr"},
			expected:  "fr",
		},
		{
			name:      "quality values",
			header:    "fr;q=0.5,en;q=0.9",
			available: []string{"en", "fr"},
			expected:  "en",
		},
		{
			name:      "region matches base",
			header:    "fr-BE",
			available: []string{"en", "fr"},
			expected:  "fr",
		},
		{
			name:      "unsupported language falls back",
			header:    "de-DE,de;q=0.9",
			available: []string{"en", "fr"},
			expected:  "en",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.ParseAcceptLanguage(tt.header, tt.available))
		})
	}
}

func TestReplacePlaceholders(t *testing.T) {
	t.Parallel()

	got := i18n.ReplacePlaceholders("%{field} must be between %{min} and %{max} characters", i18n.M{
		"field": "Name",
		"min":   2,
		"max":   50,
	})
	assert.Equal(t, "Name must be between 2 and 50 characters", got)

	assert.Equal(t, "Hello %{name}", i18n.ReplacePlaceholders("Hello %{name}", i18n.M{"other": 1}))
	assert.Equal(t, "plain", i18n.ReplacePlaceholders("plain", nil))
}
