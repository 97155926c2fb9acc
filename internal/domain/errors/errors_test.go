package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetails_KeepsIdentity(t *testing.T) {
	err := ErrProductNotFound.WithDetails("Product 42 not found")

	assert.True(t, errors.Is(err, ErrProductNotFound))
	assert.Equal(t, "Product 42 not found", err.Details())
	assert.Equal(t, http.StatusNotFound, err.HTTPCode())

	// The catalog entry itself stays untouched.
	assert.Empty(t, ErrProductNotFound.Details())
}

func TestBaseError_WithDetails_DistinctCodesDoNotMatch(t *testing.T) {
	err := ErrImageTooLarge.WithDetails("upload exceeds the configured size limit")

	assert.False(t, errors.Is(err, ErrUnsupportedImageType))
	assert.True(t, errors.Is(err, ErrImageTooLarge))
}

func TestBaseError_WrapMessage_KeepsIdentity(t *testing.T) {
	err := ErrUserAlreadyExists.WrapMessage("username already taken")

	assert.True(t, errors.Is(err, ErrUserAlreadyExists))

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "USER_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestBaseError_IsIgnoresForeignErrors(t *testing.T) {
	assert.False(t, errors.Is(ErrOrderNotFound, errors.New("order not found")))
}
