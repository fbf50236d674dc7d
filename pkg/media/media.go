// Package media maps opaque media-file identifiers to fetchable URLs.
package media

import "fmt"

// Kind identifies the class of a stored media file
type Kind string

const (
	KindAvatar     Kind = "userAvatar"
	KindAlbumCover Kind = "albumCover"
	KindAudio      Kind = "audio"
)

// Resolver composes file URLs against a fixed backend origin.
// It is a pure mapping: no state, no I/O, no error conditions.
type Resolver struct {
	origin string
}

// NewResolver creates a resolver for the given backend origin,
// e.g. "http://localhost:3000".
func NewResolver(origin string) Resolver {
	return Resolver{origin: origin}
}

// Resolve returns the fetchable URL for a media file. An empty identifier
// yields ok=false; the caller renders a fallback instead.
func (r Resolver) Resolve(kind Kind, fileID string) (string, bool) {
	if fileID == "" {
		return "", false
	}
	return fmt.Sprintf("%s/api/files/%s/%s", r.origin, kind, fileID), true
}

// Origin returns the backend origin this resolver composes against
func (r Resolver) Origin() string {
	return r.origin
}
