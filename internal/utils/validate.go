package utils

import "strings"

// Validation messages returned to clients. Every violated field is
// reported, not just the first one found.
const (
	MsgNameRequired     = "Name is required"
	MsgEmailRequired    = "Email is required"
	MsgInvalidEmail     = "Invalid email format"
	MsgPasswordRequired = "Password is required"
)

// ValidateRegistration checks a registration payload and returns the full
// list of violations. An empty slice means the input is acceptable.
func ValidateRegistration(name, email, password string) []string {
	var errs []string
	if strings.TrimSpace(name) == "" {
		errs = append(errs, MsgNameRequired)
	}
	errs = append(errs, validateEmail(email)...)
	if password == "" {
		errs = append(errs, MsgPasswordRequired)
	}
	return errs
}

// ValidateLogin checks a login payload, collecting every violation.
func ValidateLogin(email, password string) []string {
	var errs []string
	if password == "" {
		errs = append(errs, MsgPasswordRequired)
	}
	errs = append(errs, validateEmail(email)...)
	return errs
}

// validateEmail requires a non-empty value containing "@". A missing value
// and a malformed one produce different messages, matching the API contract.
func validateEmail(email string) []string {
	if strings.TrimSpace(email) == "" {
		return []string{MsgEmailRequired}
	}
	if !strings.Contains(email, "@") {
		return []string{MsgInvalidEmail}
	}
	return nil
}
