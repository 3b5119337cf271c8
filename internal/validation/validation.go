// Package validation provides pure payload checks for signup, login and
// contact creation. Validators return nil on success or an error whose
// message is shown to the caller verbatim.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

// emailPattern is deliberately permissive rather than RFC-compliant:
// word/dot/plus/hyphen local part, dot-separated domain, and a top-level
// label of 2-4 letters. Emails with longer TLDs (e.g. "a@b.museum") are
// rejected. Do not tighten this; clients depend on the current behavior.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,4}\b`)

// Validation errors, re-used where the same field fails the same check.
var (
	ErrNameBlank     = errors.New("Name cannot be left blank")
	ErrEmailBlank    = errors.New("Email cannot be left blank")
	ErrEmailInvalid  = errors.New("Email is not valid")
	ErrPasswordBlank = errors.New("Password cannot be left blank")
	ErrNameRequired  = errors.New("Name is required")
	ErrPhoneRequired = errors.New("Phone is required")
)

// IsValidEmail reports whether email passes the permissive shape check.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateSignup checks a signup payload. Name and email must be
// non-blank, email must pass the shape check, and password must be
// non-empty (whitespace-only passwords are allowed).
func ValidateSignup(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameBlank
	}
	if err := validateCredentials(email, password); err != nil {
		return err
	}
	return nil
}

// ValidateLogin checks a login payload: same email and password rules as
// signup, without the name check.
func ValidateLogin(email, password string) error {
	return validateCredentials(email, password)
}

func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailBlank
	}
	if !IsValidEmail(email) {
		return ErrEmailInvalid
	}
	if password == "" {
		return ErrPasswordBlank
	}
	return nil
}

// ValidateContact checks a contact payload. Name and phone are required;
// email is optional but must pass the shape check when present.
func ValidateContact(name, phone, email string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(phone) == "" {
		return ErrPhoneRequired
	}
	if email != "" && !IsValidEmail(email) {
		return ErrEmailInvalid
	}
	return nil
}
