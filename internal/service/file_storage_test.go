package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"teleradiology-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStorage(ctx, config.StorageConfig{Driver: "local", UploadDir: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "resumes", "cv.pdf", strings.NewReader("%PDF-1.4"), 8, "application/pdf"))

	rc, info, err := store.Open(ctx, "resumes", "cv.pdf")
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	_ = rc.Close()
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.EqualValues(t, 8, info.Size)

	files, err := store.List(ctx, "resumes")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "cv.pdf", files[0].Name)

	require.NoError(t, store.Delete(ctx, "resumes", "cv.pdf"))
	assert.ErrorIs(t, store.Delete(ctx, "resumes", "cv.pdf"), ErrFileNotFound)
	_, _, err = store.Open(ctx, "resumes", "cv.pdf")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLocalStorage_PathTraversalStaysInRoot(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store, err := NewLocalStorage(root)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "../avatars", "../../evil.png", strings.NewReader("x"), 1, ""))
	_, _, err = store.Open(ctx, "avatars", "evil.png")
	assert.NoError(t, err)
}

func TestLocalStorage_ListMissingCategory(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	files, err := store.List(context.Background(), "documents")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestNewFileStorage_UnknownDriver(t *testing.T) {
	_, err := NewFileStorage(context.Background(), config.StorageConfig{Driver: "ftp"})
	assert.Error(t, err)
}
