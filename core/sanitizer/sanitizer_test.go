package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmydush/businessos/core/sanitizer"
)

func TestSanitizeInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims", "  hello  ", "hello"},
		{"angle brackets", "<script>x</script>", "scriptx/script"},
		{"javascript scheme", "JavaScript:alert(1)", "alert(1)"},
		{"event handler", `img onerror=alert(1)`, "img alert(1)"},
		{"mixed case handler", `a OnMouseOver=x`, "a x"},
		{"plain text untouched", "Kigali Coffee Ltd", "Kigali Coffee Ltd"},
		{"combined", `  <b onclick=alert(1)>hi</b> `, "b alert(1)hi/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizer.SanitizeInput(tt.input))
		})
	}
}

func TestNormalizers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jane@shop.rw", sanitizer.NormalizeEmail("  Jane@Shop.RW "))
	assert.Equal(t, "+250781234567", sanitizer.NormalizePhone(" +250 (78) 123-4567"))
	assert.Equal(t, "0781234567", sanitizer.NormalizePhone("078-123-4567"))
	assert.Equal(t, "my_receipt_.pdf", sanitizer.SanitizeFilename("../../my receipt!.pdf"))
	assert.Equal(t, "logo.png", sanitizer.SanitizeFilename(`C:\Users\jane\logo.png`))
	assert.Equal(t, "file", sanitizer.SanitizeFilename(""))
	assert.Equal(t, "hidden", sanitizer.SanitizeFilename(".hidden"))
}

func TestStringHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sanitizer.RemoveExtraWhitespace("  a \t b\n\nc "))
	assert.Equal(t, "AB12", sanitizer.RemoveWhitespace(" A B\t1\n2 "))
	assert.Equal(t, "AB-12", sanitizer.ToUpper("ab-12"))
	assert.Equal(t, "line one line two", sanitizer.SingleLine("line one\r\nline two"))
	assert.Equal(t, "Tom & Jerry", sanitizer.StripHTML("<p>Tom &amp; Jerry</p>"))
	assert.Equal(t, "ab\n", sanitizer.RemoveControlChars("a\x00b\n"))
	assert.Equal(t, "héll", sanitizer.MaxLength("héllo", 4))
	assert.Empty(t, sanitizer.MaxLength("abc", 0))
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("runs in order", func(t *testing.T) {
		out, err := sanitizer.Apply("  Jane@Shop.RW ", "trim", "email")
		require.NoError(t, err)
		assert.Equal(t, "jane@shop.rw", out)
	})

	t.Run("max length", func(t *testing.T) {
		out, err := sanitizer.Apply(strings.Repeat("x", 10), "text", "max:4")
		require.NoError(t, err)
		assert.Equal(t, "xxxx", out)
	})

	t.Run("no_spaces removes every space", func(t *testing.T) {
		out, err := sanitizer.Apply(" ab 12 ", "no_spaces", "upper")
		require.NoError(t, err)
		assert.Equal(t, "AB12", out)

		out, err = sanitizer.Apply(" a   b ", "collapse_spaces")
		require.NoError(t, err)
		assert.Equal(t, "a b", out)
	})

	t.Run("unknown sanitizer", func(t *testing.T) {
		out, err := sanitizer.Apply("value", "trim", "nope")
		require.ErrorIs(t, err, sanitizer.ErrUnknownSanitizer)
		assert.Equal(t, "value", out)
	})

	t.Run("custom sanitizer", func(t *testing.T) {
		sanitizer.Register("sku", func(s string) string { return strings.ToUpper(strings.TrimSpace(s)) })
		assert.True(t, sanitizer.Exists("sku"))

		out, err := sanitizer.Apply(" ab-12 ", "sku")
		require.NoError(t, err)
		assert.Equal(t, "AB-12", out)
	})

	t.Run("exists", func(t *testing.T) {
		assert.True(t, sanitizer.Exists("max:10"))
		assert.False(t, sanitizer.Exists("max:0"))
		assert.False(t, sanitizer.Exists("missing"))
	})
}

func TestSanitizeValues(t *testing.T) {
	t.Parallel()

	values := map[string]any{
		"email":        " Jane@Shop.RW ",
		"businessName": "  <Acme>   Ltd ",
		"tags":         []string{" a ", "b "},
		"quantity":     12,
	}

	err := sanitizer.SanitizeValues(values, map[string][]string{
		"email":        {"email"},
		"businessName": {"text"},
		"tags":         {"trim"},
		"quantity":     {"trim"},
		"missing":      {"trim"},
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@shop.rw", values["email"])
	assert.Equal(t, "Acme Ltd", values["businessName"])
	assert.Equal(t, []string{"a", "b"}, values["tags"])
	assert.Equal(t, 12, values["quantity"])
	assert.NotContains(t, values, "missing")

	err = sanitizer.SanitizeValues(values, map[string][]string{"email": {"bogus"}})
	require.ErrorIs(t, err, sanitizer.ErrUnknownSanitizer)
}
