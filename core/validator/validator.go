package validator

import (
	"encoding/json"
	"math"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultMinStringLength is the lower bound used by IsValidStringDefault.
	DefaultMinStringLength = 1
	// DefaultMaxStringLength is the upper bound used by IsValidStringDefault.
	DefaultMaxStringLength = 255

	maxEmailLength = 254
	minPhoneDigits = 10
	maxPhoneDigits = 15
	maxPriceScale  = 2
)

var (
	// Local part allows the RFC 5322 atext set plus dots; the domain needs at least
	// two labels of up to 63 characters with hyphens only in the interior.
	emailRegex = regexp.MustCompile("^[A-Za-z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
		`[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?` +
		`(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?)+$`)

	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{3,30}$`)

	dateLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		time.DateOnly,
		"2006/01/02",
		"01/02/2006",
	}
)

// Range bounds a numeric value. Nil bounds are not checked.
type Range struct {
	Min *float64
	Max *float64
}

// AtLeast returns a Range with only a lower bound.
func AtLeast(minValue float64) Range {
	return Range{Min: &minValue}
}

// AtMost returns a Range with only an upper bound.
func AtMost(maxValue float64) Range {
	return Range{Max: &maxValue}
}

// Between returns a Range with both bounds set.
func Between(minValue, maxValue float64) Range {
	return Range{Min: &minValue, Max: &maxValue}
}

// Contains reports whether n lies within the range, bounds inclusive.
func (r Range) Contains(n float64) bool {
	if r.Min != nil && n < *r.Min {
		return false
	}
	if r.Max != nil && n > *r.Max {
		return false
	}
	return true
}

// IsValidEmail reports whether v is a string shaped like local@domain.tld.
func IsValidEmail(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" || len(s) > maxEmailLength {
		return false
	}
	return emailRegex.MatchString(s)
}

// IsValidPhone strips every non-digit character and accepts 10 to 15 digits,
// so separators such as "078-123-4567" and "+250 78 123 4567" are ignored.
func IsValidPhone(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	digits := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

// IsValidString reports whether v is a string whose trimmed length, counted in
// runes, lies within [minLen, maxLen].
func IsValidString(v any, minLen, maxLen int) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n >= minLen && n <= maxLen
}

// IsValidStringDefault is IsValidString with the 1..255 default bounds.
func IsValidStringDefault(v any) bool {
	return IsValidString(v, DefaultMinStringLength, DefaultMaxStringLength)
}

// ParseNumber converts numeric Go values, json.Number and numeric strings to float64.
// Strings are parsed strictly after trimming: "12abc" is not a number.
func ParseNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// IsValidNumber reports whether v parses as a finite number inside r.
func IsValidNumber(v any, r Range) bool {
	n, ok := ParseNumber(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	return r.Contains(n)
}

// IsValidPrice accepts non-negative numbers with at most two fraction digits.
func IsValidPrice(v any) bool {
	if !IsValidNumber(v, AtLeast(0)) {
		return false
	}
	return fractionDigits(v) <= maxPriceScale
}

// fractionDigits counts the digits after the decimal point in the textual form of v.
func fractionDigits(v any) int {
	var s string
	switch n := v.(type) {
	case string:
		s = strings.TrimSpace(n)
	case json.Number:
		s = n.String()
	case float64:
		s = strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return 0
	}
	_, frac, found := strings.Cut(s, ".")
	if !found {
		return 0
	}
	return len(frac)
}

// ParseDate converts time values, date strings and unix milliseconds into a time.Time.
func ParseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return *d, true
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case int64:
		return time.UnixMilli(d), true
	case int:
		return time.UnixMilli(int64(d)), true
	case float64:
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(d)), true
	default:
		return time.Time{}, false
	}
}

// IsValidDate reports whether v represents a real calendar date.
func IsValidDate(v any) bool {
	_, ok := ParseDate(v)
	return ok
}

// IsFutureDate reports whether v is a valid date after the current time.
func IsFutureDate(v any) bool {
	return IsFutureDateAt(v, time.Now())
}

// IsFutureDateAt reports whether v is a valid date after now.
func IsFutureDateAt(v any, now time.Time) bool {
	t, ok := ParseDate(v)
	return ok && t.After(now)
}

// IsPastDate reports whether v is a valid date before the current time.
func IsPastDate(v any) bool {
	return IsPastDateAt(v, time.Now())
}

// IsPastDateAt reports whether v is a valid date before now.
func IsPastDateAt(v any, now time.Time) bool {
	t, ok := ParseDate(v)
	return ok && t.Before(now)
}

// IsValidUsername accepts 3 to 30 letters, digits, underscores and hyphens.
func IsValidUsername(v any) bool {
	s, ok := v.(string)
	return ok && usernameRegex.MatchString(s)
}

// IsValidURL accepts absolute http and https URLs with a host.
func IsValidURL(v any) bool {
	s, ok := v.(string)
	if !ok || s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// IsValidArray reports whether v is a slice or array with at least minLen elements.
func IsValidArray(v any, minLen int) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return !rv.IsNil() && rv.Len() >= minLen
	case reflect.Array:
		return rv.Len() >= minLen
	default:
		return false
	}
}

// IsValidObject reports whether v is a non-nil map, a struct or a non-nil pointer to a struct.
// Slices and arrays are not objects.
func IsValidObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return !rv.IsNil()
	case reflect.Struct:
		return true
	case reflect.Pointer:
		return !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
	default:
		return false
	}
}
