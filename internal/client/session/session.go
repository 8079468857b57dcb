package session

import (
	"strings"

	"github.com/dmitrijs2005/socialdeck/internal/client/models"
)

// Storage keys.
const (
	TokenKey = "authToken"
	UserKey  = "currentUser"
)

// Session is an authenticated identity.
type Session struct {
	Token string
	User  models.User
}

// Valid reports whether s would pass CheckSession once stored.
func (s Session) Valid() bool {
	return strings.TrimSpace(s.Token) != "" && s.User.HasIdentity()
}

// Reason explains an unauthenticated Result.
type Reason string

const (
	ReasonNone      Reason = ""
	ReasonMissing   Reason = "missing"
	ReasonMalformed Reason = "malformed"
	ReasonStorage   Reason = "storage"
)

// Result is the outcome of CheckSession. Session is only meaningful when
// Authenticated is true.
type Result struct {
	Authenticated bool
	Session       Session
	Reason        Reason
}

// OK reports whether the session is authenticated.
func (r Result) OK() bool { return r.Authenticated }
