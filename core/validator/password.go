package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 8
	// MaxPasswordLength is the longest accepted password.
	MaxPasswordLength = 128
	// SpecialCharacters lists the characters that count as "special" for password rules.
	SpecialCharacters = `!@#$%^&*()_+-=[]{};':"\|,.<>`

	strongPasswordLength = 12
)

// Strength is the four-level label derived from a password score.
type Strength string

const (
	StrengthWeak       Strength = "weak"
	StrengthMedium     Strength = "medium"
	StrengthStrong     Strength = "strong"
	StrengthVeryStrong Strength = "very-strong"
)

// Requirement identifies one password rule. Values double as translation keys.
type Requirement string

const (
	RequirementMinLength Requirement = "password.min_length"
	RequirementMaxLength Requirement = "password.max_length"
	RequirementLower     Requirement = "password.lowercase"
	RequirementUpper     Requirement = "password.uppercase"
	RequirementNumber    Requirement = "password.number"
	RequirementSpecial   Requirement = "password.special"
)

var requirementMessages = map[Requirement]string{
	RequirementMinLength: fmt.Sprintf("Password must be at least %d characters long", MinPasswordLength),
	RequirementMaxLength: fmt.Sprintf("Password must be less than %d characters long", MaxPasswordLength),
	RequirementLower:     "Password must contain at least one lowercase letter",
	RequirementUpper:     "Password must contain at least one uppercase letter",
	RequirementNumber:    "Password must contain at least one number",
	RequirementSpecial:   "Password must contain at least one special character",
}

// Message returns the English message for the requirement.
func (r Requirement) Message() string {
	return requirementMessages[r]
}

// PasswordRequirements is the checklist rendered next to a password input.
type PasswordRequirements struct {
	MinLength  bool `json:"minLength"`
	HasLower   bool `json:"hasLower"`
	HasUpper   bool `json:"hasUpper"`
	HasNumber  bool `json:"hasNumber"`
	HasSpecial bool `json:"hasSpecial"`
}

// PasswordAssessment is the result of ValidatePassword.
// Errors and Failed are parallel and follow the fixed rule order:
// length, lowercase, uppercase, number, special.
type PasswordAssessment struct {
	Valid        bool                 `json:"isValid"`
	Strength     Strength             `json:"strength"`
	Score        int                  `json:"score"`
	Errors       []string             `json:"errors"`
	Failed       []Requirement        `json:"-"`
	Requirements PasswordRequirements `json:"requirements"`
}

// ValidatePassword checks every password rule and collects one message per unmet rule.
func ValidatePassword(password string) PasswordAssessment {
	reqs := CheckPasswordRequirements(password)
	length := utf8.RuneCountInString(password)

	var failed []Requirement
	switch {
	case length < MinPasswordLength:
		failed = append(failed, RequirementMinLength)
	case length > MaxPasswordLength:
		failed = append(failed, RequirementMaxLength)
	}
	if !reqs.HasLower {
		failed = append(failed, RequirementLower)
	}
	if !reqs.HasUpper {
		failed = append(failed, RequirementUpper)
	}
	if !reqs.HasNumber {
		failed = append(failed, RequirementNumber)
	}
	if !reqs.HasSpecial {
		failed = append(failed, RequirementSpecial)
	}

	errs := make([]string, 0, len(failed))
	for _, r := range failed {
		errs = append(errs, r.Message())
	}

	score := PasswordScore(password)
	return PasswordAssessment{
		Valid:        len(failed) == 0,
		Strength:     strengthForScore(score),
		Score:        score,
		Errors:       errs,
		Failed:       failed,
		Requirements: reqs,
	}
}

// CheckPasswordRequirements reports which checklist items the password satisfies.
func CheckPasswordRequirements(password string) PasswordRequirements {
	var reqs PasswordRequirements
	reqs.MinLength = utf8.RuneCountInString(password) >= MinPasswordLength
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			reqs.HasLower = true
		case r >= 'A' && r <= 'Z':
			reqs.HasUpper = true
		case r >= '0' && r <= '9':
			reqs.HasNumber = true
		case strings.ContainsRune(SpecialCharacters, r):
			reqs.HasSpecial = true
		}
	}
	return reqs
}

// PasswordScore returns the 0..5 composition score:
// one point each for length >= 8, length >= 12, mixed case, a digit and a special character.
func PasswordScore(password string) int {
	reqs := CheckPasswordRequirements(password)
	score := 0
	if reqs.MinLength {
		score++
	}
	if utf8.RuneCountInString(password) >= strongPasswordLength {
		score++
	}
	if reqs.HasLower && reqs.HasUpper {
		score++
	}
	if reqs.HasNumber {
		score++
	}
	if reqs.HasSpecial {
		score++
	}
	return score
}

// PasswordStrength maps the password score to its label.
func PasswordStrength(password string) Strength {
	return strengthForScore(PasswordScore(password))
}

func strengthForScore(score int) Strength {
	switch {
	case score <= 2:
		return StrengthWeak
	case score == 3:
		return StrengthMedium
	case score == 4:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}
