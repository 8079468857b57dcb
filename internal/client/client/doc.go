// Package client contains the HTTP client for the scheduling API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) used by
//     the services: users, two-factor auth, linked accounts, posting
//     schedule and post creation.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches the
//     session token as a bearer header, decodes the {success, message, data}
//     envelope and maps failures to sentinel errors.
//
// # Error Handling
//
// Failures reported by the API surface as *APIError, which keeps the server
// message. Categories can be matched with errors.Is: ErrUnauthorized (401,
// 403 or no token), ErrUnavailable (transport or gateway errors), ErrNotJSON
// and ErrMalformedResponse. Requests are never retried.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
