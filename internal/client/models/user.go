// Package models defines the API resources the client exchanges with the
// scheduling backend, plus the display helpers used to print them.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexString decodes from either a JSON string or a JSON number. The API
// is not consistent about ids ("1" vs 1), so all ids use this type.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("flex string: %w", err)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// User is the identity record kept in the session.
type User struct {
	ID       FlexString `json:"id"`
	Email    string     `json:"email"`
	Username string     `json:"username,omitempty"`
}

// HasIdentity reports whether the fields required to trust a stored user
// (id and email) are present.
func (u User) HasIdentity() bool {
	return strings.TrimSpace(string(u.ID)) != "" && strings.TrimSpace(u.Email) != ""
}

// DisplayName prefers the username and falls back to the email.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// Registration is the sign-up form.
type Registration struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
