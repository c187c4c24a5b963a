// Package auth decides whether a site requires login and runs the
// appropriate login strategy, producing persisted sessions.
package auth

import (
	"context"

	"github.com/electronicmaxwell/JobApplicationFiller/internal/types"
)

// Page is the page-driving collaborator the authenticator runs against.
// Implementations wrap a real browser; tests use a fake. The authenticator
// never sees live DOM handles, only selector strings and cookie snapshots.
type Page interface {
	Navigate(ctx context.Context, url string) error
	WaitForLoad(ctx context.Context) error
	CurrentURL(ctx context.Context) (string, error)
	// QueryVisible returns the first selector of the set that resolves to
	// a visible element, or false when none does.
	QueryVisible(ctx context.Context, selectors []string) (string, bool, error)
	Fill(ctx context.Context, selector, value string) error
	Click(ctx context.Context, selector string) error
	Cookies(ctx context.Context) ([]types.Cookie, error)
}

// SessionStore persists sessions keyed by domain.
type SessionStore interface {
	Session(domain string) (types.Session, bool)
	SaveSession(session types.Session) error
}
