package upload

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"staffgate/config"
	domainerrors "staffgate/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, maxSizeMB int) (ImageStore, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Upload: &config.UploadConfig{
			Dir:          dir,
			MaxSizeMB:    maxSizeMB,
			PublicPrefix: "/uploads",
		},
	}

	store, err := NewLocalStore(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return store, dir
}

// fileHeader builds a real multipart.FileHeader by routing the content
// through an actual multipart request.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("profile_image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["profile_image"][0]
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestLocalStore_SavePNG(t *testing.T) {
	store, dir := newTestStore(t, 5)

	path, err := store.Save(fileHeader(t, "avatar.png", pngHeader))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, "/uploads/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	// The file is on disk under its generated name, not the client's.
	stored := filepath.Join(dir, strings.TrimPrefix(path, "/uploads/"))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.NotContains(t, path, "avatar")
}

func TestLocalStore_DistinctNamesForSameFilename(t *testing.T) {
	store, _ := newTestStore(t, 5)

	first, err := store.Save(fileHeader(t, "avatar.png", pngHeader))
	require.NoError(t, err)
	second, err := store.Save(fileHeader(t, "avatar.png", pngHeader))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStore_RejectsNonImage(t *testing.T) {
	store, _ := newTestStore(t, 5)

	_, err := store.Save(fileHeader(t, "script.png", []byte("#!/bin/sh\necho hi\n")))
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImageType)
}

func TestLocalStore_RejectsOversized(t *testing.T) {
	store, _ := newTestStore(t, 1)

	oversized := make([]byte, 2<<20)
	copy(oversized, pngHeader)

	_, err := store.Save(fileHeader(t, "big.png", oversized))
	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
}
