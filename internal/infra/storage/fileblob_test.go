package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func newTestStore(t *testing.T) *avatarBlobStore {
	t.Helper()

	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return &avatarBlobStore{bucket: bucket}
}

func TestAvatarBlobStore_SaveAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	name, err := store.Save(ctx, ".png", "image/png", strings.NewReader("fake png bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "avatar-"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	// Stored object is readable
	data, err := store.bucket.ReadAll(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(data))

	// Delete removes it
	require.NoError(t, store.Delete(ctx, name))
	exists, err := store.bucket.Exists(ctx, name)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAvatarBlobStore_SaveGeneratesUniqueNames(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Save(ctx, ".jpg", "image/jpeg", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Save(ctx, ".jpg", "image/jpeg", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAvatarBlobStore_DeleteMissingIsNoError(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Delete(context.Background(), "avatar-does-not-exist.png"))
	assert.NoError(t, store.Delete(context.Background(), ""))
}
