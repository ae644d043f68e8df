// Package common contains shared constants and small helpers used across
// jwtconsole components.
package common

const (
	// AuthorizationHeaderName carries "<type> <token>" on outbound API calls.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName correlates one client call with server logs.
	RequestIDHeaderName = "X-Request-Id"

	// DefaultTokenType is used when the server does not report one.
	DefaultTokenType = "Bearer"
)
