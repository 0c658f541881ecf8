package validator_test

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/emmydush/businessos/core/validator"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"simple", "user@example.com", true},
		{"plus and dots", "first.last+sales@shop.co.rw", true},
		{"special local chars", "o'brien!#$%&*=?^_`{|}~@example.org", true},
		{"hyphenated label", "ops@my-company.com", true},
		{"missing at", "user.example.com", false},
		{"missing domain dot", "user@localhost", false},
		{"empty local", "@example.com", false},
		{"leading hyphen label", "user@-example.com", false},
		{"trailing hyphen label", "user@example-.com", false},
		{"empty label", "user@example..com", false},
		{"space", "us er@example.com", false},
		{"empty", "", false},
		{"non-string", 42, false},
		{"nil", nil, false},
		{"label too long", "user@" + strings.Repeat("a", 64) + ".com", false},
		{"label at limit", "user@" + strings.Repeat("a", 63) + ".com", true},
		{"too long overall", strings.Repeat("a", 64) + "@" + strings.Repeat("b", 63) + "." + strings.Repeat("c", 63) + "." + strings.Repeat("d", 63) + ".com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsValidEmail(tt.input))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	t.Parallel()

	t.Run("separators do not matter", func(t *testing.T) {
		assert.Equal(t, validator.IsValidPhone("0781234567"), validator.IsValidPhone("078-123-4567"))
		assert.True(t, validator.IsValidPhone("078-123-4567"))
		assert.True(t, validator.IsValidPhone("+250 (78) 123 4567"))
	})

	t.Run("digit count bounds", func(t *testing.T) {
		assert.False(t, validator.IsValidPhone("123456789"))
		assert.True(t, validator.IsValidPhone("1234567890"))
		assert.True(t, validator.IsValidPhone("123456789012345"))
		assert.False(t, validator.IsValidPhone("1234567890123456"))
	})

	t.Run("non-string", func(t *testing.T) {
		assert.False(t, validator.IsValidPhone(781234567))
		assert.False(t, validator.IsValidPhone(nil))
	})
}

func TestIsValidString(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsValidStringDefault("a"))
	assert.False(t, validator.IsValidStringDefault("   "))
	assert.False(t, validator.IsValidStringDefault(strings.Repeat("x", 256)))
	assert.True(t, validator.IsValidString("  abc  ", 3, 3))
	assert.True(t, validator.IsValidString("héllo", 5, 5), "length counts runes")
	assert.False(t, validator.IsValidString(12, 1, 10))
}

func TestIsValidNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		r     validator.Range
		want  bool
	}{
		{"int", 5, validator.Range{}, true},
		{"numeric string", " 3.5 ", validator.Range{}, true},
		{"json number", json.Number("12"), validator.Range{}, true},
		{"partial string", "12abc", validator.Range{}, false},
		{"nan", math.NaN(), validator.Range{}, false},
		{"inf", math.Inf(1), validator.Range{}, false},
		{"inf string", "Inf", validator.Range{}, false},
		{"below min", -1, validator.AtLeast(0), false},
		{"at min", 0, validator.AtLeast(0), true},
		{"above max", 11, validator.AtMost(10), false},
		{"inside", 5.5, validator.Between(1, 10), true},
		{"bool", true, validator.Range{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsValidNumber(tt.input, tt.r))
		})
	}
}

func TestIsValidPrice(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsValidPrice("19.99"))
	assert.True(t, validator.IsValidPrice("20"))
	assert.True(t, validator.IsValidPrice(0))
	assert.True(t, validator.IsValidPrice(12.5))
	assert.False(t, validator.IsValidPrice("19.999"))
	assert.False(t, validator.IsValidPrice(1.005))
	assert.False(t, validator.IsValidPrice("-1"))
	assert.False(t, validator.IsValidPrice("abc"))
}

func TestDates(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, validator.IsValidDate("2024-02-29"))
	assert.False(t, validator.IsValidDate("2023-02-29"))
	assert.False(t, validator.IsValidDate("2024-13-01"))
	assert.False(t, validator.IsValidDate("not a date"))
	assert.False(t, validator.IsValidDate(""))
	assert.False(t, validator.IsValidDate(time.Time{}))
	assert.True(t, validator.IsValidDate(now))
	assert.True(t, validator.IsValidDate("2025-06-15T10:30:00Z"))

	assert.True(t, validator.IsPastDateAt("2025-06-14", now))
	assert.False(t, validator.IsPastDateAt("2025-06-16", now))
	assert.True(t, validator.IsFutureDateAt("2025-06-16", now))
	assert.False(t, validator.IsFutureDateAt("garbage", now))

	assert.True(t, validator.IsPastDate("2000-01-01"))
	assert.True(t, validator.IsFutureDate(time.Now().Add(time.Hour)))
}

func TestIsValidUsername(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsValidUsername("jane_doe-1"))
	assert.False(t, validator.IsValidUsername("jd"))
	assert.False(t, validator.IsValidUsername(strings.Repeat("a", 31)))
	assert.False(t, validator.IsValidUsername("jane doe"))
	assert.False(t, validator.IsValidUsername("jane.doe"))
}

func TestIsValidURL(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsValidURL("https://businessos.app/pricing"))
	assert.True(t, validator.IsValidURL("HTTP://example.com"))
	assert.False(t, validator.IsValidURL("ftp://example.com"))
	assert.False(t, validator.IsValidURL("example.com"))
	assert.False(t, validator.IsValidURL("http://"))
	assert.False(t, validator.IsValidURL("javascript:alert(1)"))
}

func TestShapes(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsValidArray([]string{"a"}, 1))
	assert.False(t, validator.IsValidArray([]string{}, 1))
	assert.True(t, validator.IsValidArray([]int{}, 0))
	assert.False(t, validator.IsValidArray("abc", 1))
	assert.False(t, validator.IsValidArray(nil, 0))

	assert.True(t, validator.IsValidObject(map[string]any{}))
	assert.True(t, validator.IsValidObject(struct{}{}))
	assert.True(t, validator.IsValidObject(&struct{ A int }{}))
	assert.False(t, validator.IsValidObject([]int{1}))
	assert.False(t, validator.IsValidObject(nil))
	assert.False(t, validator.IsValidObject((map[string]any)(nil)))
}
