// Package validation holds the field gates an account must pass before it is
// handed to the account service. Every predicate is total: it only answers
// true or false.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/Deepanshipatil/Banking-application/src/internal/domain"
)

const (
	minPasswordLength = 8
	// bcrypt only accepts passwords up to this many bytes.
	maxPasswordBytes = 72
)

var (
	namePattern    = regexp.MustCompile(`^[A-Za-z ]+$`)
	contactPattern = regexp.MustCompile(`^[0-9]{10}$`)
	// Single-label domains and lowercase two or three letter suffixes only;
	// "co.uk" and "EXAMPLE.COM" are rejected.
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._]+@[A-Za-z0-9]+\.[a-z]{2,3}$`)
)

func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

func IsValidContactNumber(contact string) bool {
	return contactPattern.MatchString(contact)
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword requires at least eight characters with one digit and one
// uppercase letter, and at most 72 bytes.
func IsValidPassword(password string) bool {
	if utf8.RuneCountInString(password) < minPasswordLength || len(password) > maxPasswordBytes {
		return false
	}

	var hasDigit, hasUpper bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		}
	}

	return hasDigit && hasUpper
}

func IsValidOpeningBalance(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(domain.MinOpeningBalance)
}

// HasBalanceScale reports whether amount fits the stored scale without
// rounding. Trailing zeros are fine: "2000.500" passes, "2000.005" does not.
func HasBalanceScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Round(domain.BalanceScale))
}

// IsPresent reports whether a free-text field carries anything besides
// whitespace. Date of birth is only checked this way.
func IsPresent(value string) bool {
	return strings.TrimSpace(value) != ""
}
