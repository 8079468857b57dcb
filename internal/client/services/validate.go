package services

import (
	"regexp"
	"strings"
)

const minPasswordLength = 8

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	codeRe  = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool { return emailRe.MatchString(s) }

func validateCode(code string) error {
	if !codeRe.MatchString(strings.TrimSpace(code)) {
		return invalid("code", "Please enter a valid 6-digit code")
	}
	return nil
}
