package usecase

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"teleradiology-api/internal/service"
	"teleradiology-api/internal/testutil"
	"teleradiology-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func newUploadUsecase(t *testing.T) UploadUsecase {
	t.Helper()
	storage, err := service.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewUploadUsecase(testutil.NewLogger(), storage, "https://api.example.com/")
}

func fileOf(name string, body []byte) UploadFile {
	return UploadFile{Filename: name, Size: int64(len(body)), Reader: bytes.NewReader(body)}
}

func TestUpload_StoresSniffedImage(t *testing.T) {
	uc := newUploadUsecase(t)
	ctx := context.Background()

	res, err := uc.Upload(ctx, "avatars", fileOf("me.jpeg", pngHeader))

	require.NoError(t, err)
	assert.Equal(t, "image/png", res.ContentType)
	assert.True(t, strings.HasSuffix(res.Name, ".png"))
	assert.Equal(t, "https://api.example.com/api/uploads/avatars/"+res.Name, res.URL)

	rc, info, err := uc.Open(ctx, "avatars", res.Name)
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, body)
	assert.Equal(t, "image/png", info.ContentType)

	files, err := uc.List(ctx, "avatars")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, res.Name, files[0].Name)
}

func TestUpload_RejectsBySniffedType(t *testing.T) {
	uc := newUploadUsecase(t)

	_, err := uc.Upload(context.Background(), "avatars", fileOf("photo.png", []byte("#!/bin/sh\necho pwned\n")))

	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
}

func TestUpload_CategoryRules(t *testing.T) {
	uc := newUploadUsecase(t)
	ctx := context.Background()

	_, err := uc.Upload(ctx, "secrets", fileOf("a.png", pngHeader))
	assert.ErrorIs(t, err, ErrUploadCategoryNotFound)

	_, err = uc.Upload(ctx, "resumes", fileOf("cv.png", pngHeader))
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)

	res, err := uc.Upload(ctx, "resumes", fileOf("cv.pdf", []byte("%PDF-1.4\n%âãÏÓ\n1 0 obj\n")))
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", res.ContentType)

	big := UploadFile{Filename: "big.png", Size: 3 << 20, Reader: bytes.NewReader(pngHeader)}
	_, err = uc.Upload(ctx, "avatars", big)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "2 MB")

	_, err = uc.Upload(ctx, "documents", fileOf("report.csv", []byte("name,count\nct,4\nmri,2\n")))
	assert.NoError(t, err)
}

func TestUpload_OpenAndDeleteRejectForeignNames(t *testing.T) {
	uc := newUploadUsecase(t)
	ctx := context.Background()

	_, _, err := uc.Open(ctx, "avatars", "../config.env")
	assert.ErrorIs(t, err, ErrFileNotFound)

	res, err := uc.Upload(ctx, "content", fileOf("logo.png", pngHeader))
	require.NoError(t, err)
	require.NoError(t, uc.Delete(ctx, "content", res.Name))
	assert.ErrorIs(t, uc.Delete(ctx, "content", res.Name), ErrFileNotFound)
}
