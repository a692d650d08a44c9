// Package validate holds the input-boundary rules for user-submitted data.
// Records that pass these checks satisfy the invariants the reporting
// engine trusts without re-validating.
package validate

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MaxDescriptionLength = 200
	MaxEmailLength       = 255
	MinPasswordLength    = 6
	MaxPasswordLength    = 72
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldErrors maps a field name to its first validation message.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Error joins the messages so FieldErrors can travel as an error value.
func (e FieldErrors) Error() string {
	messages := make([]string, 0, len(e))
	for field, message := range e {
		messages = append(messages, field+": "+message)
	}
	return strings.Join(messages, "; ")
}

// Expense checks the rules an expense must satisfy before it reaches
// storage: a positive amount, a date, and a bounded description.
func Expense(amount decimal.Decimal, date time.Time, description string) FieldErrors {
	errs := FieldErrors{}
	if !amount.IsPositive() {
		errs["amount"] = "Please enter a valid amount"
	}
	if date.IsZero() {
		errs["date"] = "Please select a date"
	}
	if len(strings.TrimSpace(description)) > MaxDescriptionLength {
		errs["description"] = "Description must be less than 200 characters"
	}
	return errs
}

// Credentials checks sign-up and sign-in input.
func Credentials(email, password string) FieldErrors {
	errs := FieldErrors{}
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case len(email) > MaxEmailLength:
		errs["email"] = "Email must be less than 255 characters"
	case !emailPattern.MatchString(email):
		errs["email"] = "Please enter a valid email address"
	}
	switch {
	case password == "":
		errs["password"] = "Password is required"
	case len(password) < MinPasswordLength:
		errs["password"] = "Password must be at least 6 characters"
	case len(password) > MaxPasswordLength:
		errs["password"] = "Password must be less than 72 characters"
	}
	return errs
}

// TrimDescription normalizes a description before storage.
func TrimDescription(s string) string {
	return strings.TrimSpace(s)
}
