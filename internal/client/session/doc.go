// Package session guards access to commands that need an authenticated
// user.
//
// A session is a bearer token plus the user record returned at login. Both
// live in a Storage under the keys TokenKey and UserKey and are owned by
// one client process: the CLI wipes them on exit.
//
// Guard.CheckSession fails closed. Missing, partial or undecodable state
// is cleared and the caller is sent back to the login entry point through
// the injected Navigator, exactly once per failed check. Guard never
// panics and never returns an error from a check; the outcome is carried
// in Result.
//
// Two storage backends are provided: MemoryStorage (go-cache) and
// SQLiteStorage (modernc.org/sqlite with goose migrations).
package session
