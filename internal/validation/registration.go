// Package validation holds the registration field validators.
// Username uniqueness is checked separately in the auth service, since it
// requires a repository lookup.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

// Error variables
var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidPhoneFormat = errors.New("invalid phone number format")
	ErrEmptyContent       = errors.New("content must not be empty")
)

// phoneRegexp accepts exactly 11 digits with an optional leading +.
var phoneRegexp = regexp.MustCompile(`^\+?[0-9]{11}$`)

// FieldErrors maps a submitted field name to its validation error message.
type FieldErrors map[string]string

// Add records an error message for the given field.
func (fe FieldErrors) Add(field string, err error) {
	fe[field] = err.Error()
}

// Empty reports whether no field failed validation.
func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

// NormalizeUsername lowercases and trims a candidate username.
// Uniqueness is always checked against the normalized form.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// CheckPasswords verifies that the password and its confirmation match.
// The confirmation is only ever used for this check and is never stored.
func CheckPasswords(password, passwordConfirm string) error {
	if password != passwordConfirm {
		return ErrPasswordMismatch
	}
	return nil
}

// CheckPhone verifies the phone number format: 11 digits, optional leading +.
func CheckPhone(phone string) error {
	if !phoneRegexp.MatchString(phone) {
		return ErrInvalidPhoneFormat
	}
	return nil
}

// CheckContent verifies that a note body is not empty or whitespace-only.
func CheckContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}
