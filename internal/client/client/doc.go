// Package client contains the client-side building blocks that talk to the
// burger shop backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): catalog,
//     feed, orders and the auth endpoints.
//  2. A REST implementation (see HTTPClient) that injects the access token,
//     transparently refreshes it once when the backend answers "jwt expired",
//     checks the "success" flag of every body and fails fast through a
//     circuit breaker when the backend keeps failing.
//  3. Local persistence bootstrap (InitDatabase, RunMigrations) wiring an
//     SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Transport failures match ErrUnavailable; 401/403 answers match
// ErrUnauthorized; application rejections are *APIError, whose Message is
// the server's own text (see Message).
//
// All operations accept context.Context and honor cancellation.
package client
