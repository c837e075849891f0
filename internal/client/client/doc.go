// Package client contains the client-side building blocks that talk to the
// story API and bootstrap local persistence.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Login, Signup, LoginViaStoredCredentials and GetStories.
//  2. A concrete HTTP+JSON implementation (see HTTPClient) that tags every
//     request with an X-Request-ID and maps HTTP status codes to an explicit
//     failure Reason.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) for the
//     terminal front end: an SQLite database with embedded goose migrations.
//
// # Error Handling
//
// Every failed call returns an *Error whose Reason says why the call failed.
// Callers switch on ReasonOf(err), or match the sentinels ErrUnauthorized,
// ErrConflict and ErrUnavailable with errors.Is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation and deadlines.
package client
