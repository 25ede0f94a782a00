// Package resolver maps inbound short codes to registry links.
//
// Two backends implement the same contract: RegistryResolver queries the
// link registry directly, HTTPResolver delegates to an upstream lookup
// API. Callers distinguish "no such link" from "backend down" via the
// sentinel errors; the two must never be conflated.
package resolver

import (
	"context"
	"errors"

	"github.com/avc-dev/redirector/internal/model"
)

var (
	// ErrNotFound means no link matches the code. Expected and frequent;
	// not an operational error.
	ErrNotFound = errors.New("short link not found")

	// ErrUnavailable means the backing registry or upstream could not be
	// queried. The cause goes to logs, never to the response.
	ErrUnavailable = errors.New("link registry unavailable")
)

type Resolver interface {
	Resolve(ctx context.Context, code model.Code) (model.Link, error)
}
