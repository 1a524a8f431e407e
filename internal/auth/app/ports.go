package app

import "context"

// CredentialStore is an append-only record of (username, password) pairs.
// Match scans for an exact, case-sensitive pair; a username may appear more
// than once and any stored pair authenticates.
type CredentialStore interface {
	Append(ctx context.Context, username, password string) error
	Match(ctx context.Context, username, password string) (bool, error)
}
