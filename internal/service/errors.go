// Package service holds the business logic between the HTTP handlers and the
// stores: daily word selection, game session orchestration, stats assembly and
// account management.
package service

import "errors"

var (
	// ErrNotFound reports a lookup for a user or word that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken reports a signup against an existing username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrGenerationFailed reports that the AI word generator could not
	// produce a usable word after all retries.
	ErrGenerationFailed = errors.New("word generation failed")

	// ErrConflict reports a lost write race that did not resolve after a
	// retry; the client should re-fetch state and try again.
	ErrConflict = errors.New("concurrent update conflict")
)
