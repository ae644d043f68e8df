// Package client is the HTTP transport to the user administration API.
//
// # Overview
//
// Client is the transport contract used by the gateways in package services:
// Login and Register under /api/auth, and the user directory calls under
// /api/users. HTTPClient implements it with one net/http round trip per call.
//
// Every request carries Accept: application/json and a fresh X-Request-Id.
// When a TokenSource yields a token, Authorization is set to
// "<type> <token>".
//
// # Error Handling
//
// Outcomes are mapped to sentinel errors that callers match with errors.Is:
// ErrUnavailable (the request never got a response), ErrUnauthorized (401 or
// 403) and ErrNotFound (404). Any other non-2xx status is returned as an
// *APIError carrying the status and the server's "message" field, if any.
// ErrUnauthorized and ErrNotFound wrap an *APIError too, so errors.As works
// for every status failure.
package client
