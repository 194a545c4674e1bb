// Package session keeps the bearer token used to talk to the licensing backend.
//
// The token is stored as a small JSON file with an expiry. A token that the
// backend rejects with 401 is discarded through Discard so the next command
// asks the user to log in again instead of retrying with a dead credential.
package session
