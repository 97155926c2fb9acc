package service

import (
	"context"
	"io"
)

// AvatarStore defines the interface for storing uploaded avatar images under
// the deployment's content root. Implementations must generate collision-free
// object names; callers remain responsible for compensating deletes when a
// downstream step fails after Save.
type AvatarStore interface {
	// Save writes the image and returns the generated object name.
	Save(ctx context.Context, ext, contentType string, r io.Reader) (string, error)

	// Delete removes a previously stored image. Deleting a name that does
	// not exist is not an error.
	Delete(ctx context.Context, name string) error
}
