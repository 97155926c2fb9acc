// Package storage implements blob-backed stores for uploaded content.
package storage

import (
	"context"
	"io"
	"os"

	"gemstore/config"
	"gemstore/internal/domain/service"
	"gemstore/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// avatarBlobStore persists avatar images in a gocloud.dev blob bucket backed
// by the local filesystem.
type avatarBlobStore struct {
	bucket *blob.Bucket
}

// NewAvatarStore opens the avatar bucket under the configured upload
// directory and registers its shutdown with the application lifecycle.
func NewAvatarStore(params Params) (service.AvatarStore, error) {
	dir := params.Config.Upload.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create avatar upload directory")
	}

	bucket, err := fileblob.OpenBucket(dir, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open avatar bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &avatarBlobStore{bucket: bucket}, nil
}

// Save streams the image into the bucket under a collision-free name and
// returns that name.
func (s *avatarBlobStore) Save(ctx context.Context, ext, contentType string, r io.Reader) (string, error) {
	name := "avatar-" + uuid.NewString() + ext

	writer, err := s.bucket.NewWriter(ctx, name, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open avatar writer")
	}

	if _, err := io.Copy(writer, r); err != nil {
		// Abort the write so no partial object is left behind.
		_ = writer.Close()
		_ = s.bucket.Delete(ctx, name)

		return "", errors.Wrap(err, "failed to write avatar")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish avatar write")
	}

	return name, nil
}

// Delete removes a stored image. Missing objects are treated as already
// deleted.
func (s *avatarBlobStore) Delete(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, name); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete avatar")
	}

	return nil
}
