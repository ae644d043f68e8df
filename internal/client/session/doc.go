// Package session keeps the authenticated session of the console.
//
// A Store holds the current session in memory, mirrors it to durable local
// storage under two keys (the raw token and the JSON-encoded session) and
// multicasts every change to its observers. The store is created explicitly
// and passed to the components that need it.
package session
