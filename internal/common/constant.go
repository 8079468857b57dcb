// Package common contains small helpers and constants shared by the
// socialdeck client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer token on authenticated API calls.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the session token in the Authorization header.
	BearerPrefix = "Bearer "
)
