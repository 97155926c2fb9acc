package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"gemstore/config"
	deliverycontext "gemstore/internal/delivery/context"
	domainerrors "gemstore/internal/domain/errors"
	"gemstore/internal/domain/repository"
	"gemstore/internal/domain/service"
	"gemstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// allowedImageTypes maps the accepted upload MIME types to the extension used
// for the stored object.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// avatarService implements the AvatarUsecase interface.
type avatarService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	avatarStore   service.AvatarStore
	maxAvatarSize int64
	logger        *slog.Logger
}

// AvatarServiceParams holds dependencies for AvatarService, injected by Fx.
type AvatarServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	AvatarStore service.AvatarStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAvatarService is the constructor for avatarService.
func NewAvatarService(params AvatarServiceParams) usecase.AvatarUsecase {
	var maxSize int64
	if params.Config != nil && params.Config.Upload != nil {
		maxSize = params.Config.Upload.MaxAvatarSize
	}

	return &avatarService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		avatarStore:   params.AvatarStore,
		maxAvatarSize: maxSize,
		logger:        params.Logger,
	}
}

func (srv *avatarService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadAvatar replaces a user's avatar image. The identity check runs before
// anything touches storage. After the image is stored, any failure in the
// user update triggers a compensating delete of the stored object.
func (srv *avatarService) UploadAvatar(ctx context.Context, input *usecase.UploadAvatarInput) (*usecase.UploadAvatarOutput, error) {
	if input.RequesterID != input.TargetUserID {
		srv.log(ctx).Warn("Avatar upload denied",
			slog.Any("requesterID", input.RequesterID),
			slog.Any("targetUserID", input.TargetUserID),
		)

		return nil, domainerrors.ErrForbidden.WrapMessage("cannot change another user's avatar")
	}

	ext, err := srv.validateImage(input)
	if err != nil {
		return nil, err
	}

	storedName, err := srv.avatarStore.Save(ctx, ext, input.ContentType, input.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store avatar", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store avatar")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, input.TargetUserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("user not found for avatar update")
			}

			return errors.Wrap(err, "failed to load user for avatar update")
		}

		user.Avatar = storedName

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to record new avatar")
		}

		return nil
	})
	if err != nil {
		// The image is already on disk but no user references it. Remove it
		// so failed uploads do not accumulate orphaned files.
		if deleteErr := srv.avatarStore.Delete(ctx, storedName); deleteErr != nil {
			srv.log(ctx).Error("Failed to remove orphaned avatar",
				slog.String("avatar", storedName),
				slog.Any("error", deleteErr),
			)
		}

		srv.log(ctx).Warn("Avatar upload failed", slog.Any("userID", input.TargetUserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Avatar updated", slog.Any("userID", input.TargetUserID), slog.String("avatar", storedName))

	return &usecase.UploadAvatarOutput{Avatar: storedName}, nil
}

// validateImage enforces the type allow-list and size limit and returns the
// storage extension for the upload.
func (srv *avatarService) validateImage(input *usecase.UploadAvatarInput) (string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(input.ContentType)]
	if !ok {
		return "", domainerrors.ErrUnsupportedImageType.WithDetails("got content type " + input.ContentType)
	}

	if srv.maxAvatarSize > 0 && input.Size > srv.maxAvatarSize {
		return "", domainerrors.ErrImageTooLarge.WithDetails("upload exceeds the configured size limit")
	}

	// Prefer the original file extension when it agrees with the MIME type.
	if fileExt := strings.ToLower(filepath.Ext(input.Filename)); fileExt == ext ||
		(fileExt == ".jpeg" && ext == ".jpg") {
		ext = fileExt
	}

	return ext, nil
}

// GetAvatar returns the stored avatar reference for a user.
func (srv *avatarService) GetAvatar(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return "", errors.Wrap(err, "failed to load user avatar")
	}

	return user.Avatar, nil
}
