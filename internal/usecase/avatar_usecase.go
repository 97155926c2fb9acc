package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// UploadAvatarInput defines the data required to replace a user's avatar.
// RequesterID is the identity from the session token; TargetUserID comes from
// the request path. Users may only change their own avatar.
type UploadAvatarInput struct {
	RequesterID  uuid.UUID
	TargetUserID uuid.UUID
	Filename     string
	ContentType  string
	Size         int64
	Content      io.Reader
}

// UploadAvatarOutput returns the stored avatar reference.
type UploadAvatarOutput struct {
	Avatar string
}

// AvatarUsecase defines the interface for avatar image operations.
type AvatarUsecase interface {
	// UploadAvatar validates, stores and records a new avatar image. The
	// identity check happens before anything is written; on a failure after
	// the image is stored, the stored image is removed again.
	UploadAvatar(ctx context.Context, input *UploadAvatarInput) (*UploadAvatarOutput, error)

	// GetAvatar returns the stored avatar reference for a user.
	GetAvatar(ctx context.Context, userID uuid.UUID) (string, error)
}
