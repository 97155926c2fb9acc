package handler

import (
	"log/slog"
	"net/http"

	"gemstore/internal/delivery/http/response"
	"gemstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// avatarFormField is the multipart field carrying the image.
const avatarFormField = "avatar"

// UploadHandler holds dependencies for avatar upload handlers.
type UploadHandler struct {
	uc     usecase.AvatarUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.AvatarUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadAvatar replaces the avatar of the user named in the path. The
// authenticated identity must match that user.
func (h *UploadHandler) UploadAvatar(c echo.Context) error {
	requester, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	fileHeader, err := c.FormFile(avatarFormField)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Avatar file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded avatar")
	}
	defer file.Close()

	output, err := h.uc.UploadAvatar(c.Request().Context(), &usecase.UploadAvatarInput{
		RequesterID:  requester,
		TargetUserID: targetID,
		Filename:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Content:      file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"avatarPath": output.Avatar,
	}, "Avatar updated")
}

// GetAvatar returns the stored avatar reference of the user named in the
// path. The authenticated identity must match that user.
func (h *UploadHandler) GetAvatar(c echo.Context) error {
	requester, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid user identity in token")
	}

	targetID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}

	if requester != targetID {
		return response.Forbidden(c, "FORBIDDEN", "Cannot read another user's avatar")
	}

	avatar, err := h.uc.GetAvatar(c.Request().Context(), targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"avatarPath": avatar,
	}, "")
}
