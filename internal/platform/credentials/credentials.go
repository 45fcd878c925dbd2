// Package credentials resolves the service-account bundle used to talk to
// the database. Providers are tried in order; each either returns a bundle
// or reports ErrNoCredentials so the next one gets a turn.
package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
)

// ErrNoCredentials is the typed absence returned by a provider that has
// nothing to offer, and by Resolve when every provider came up empty.
var ErrNoCredentials = errors.New("no database credentials found")

// Scopes requested for the Realtime Database.
var Scopes = []string{
	"https://www.googleapis.com/auth/firebase.database",
	"https://www.googleapis.com/auth/userinfo.email",
}

// Bundle is a service-account key in its JSON form.
type Bundle struct {
	Source    string
	ProjectID string
	JSON      []byte
}

// Provider yields a credential bundle or ErrNoCredentials.
type Provider interface {
	Name() string
	Resolve(ctx context.Context) (*Bundle, error)
}

// Resolve tries providers in order and returns the first bundle found.
// A provider error other than ErrNoCredentials stops the chain.
func Resolve(ctx context.Context, providers ...Provider) (*Bundle, error) {
	tried := make([]string, 0, len(providers))
	for _, p := range providers {
		bundle, err := p.Resolve(ctx)
		if err == nil {
			return bundle, nil
		}
		if !errors.Is(err, ErrNoCredentials) {
			return nil, fmt.Errorf("%s: %w", p.Name(), err)
		}
		tried = append(tried, err.Error())
	}
	if len(tried) == 0 {
		return nil, fmt.Errorf("%w: no providers configured", ErrNoCredentials)
	}
	return nil, fmt.Errorf("%w (tried: %s)", ErrNoCredentials, strings.Join(tried, "; "))
}

// newBundle checks that data is a usable Google credential document.
func newBundle(ctx context.Context, source string, data []byte) (*Bundle, error) {
	creds, err := google.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials from %s: %w", source, err)
	}
	return &Bundle{Source: source, ProjectID: creds.ProjectID, JSON: data}, nil
}
