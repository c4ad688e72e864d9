// Package upload stores profile images on the local filesystem and hands
// back the public path recorded on the employee.
package upload

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"staffgate/config"
	domainerrors "staffgate/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const sniffLen = 512

// ImageStore persists an uploaded image and returns its public reference.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

// LocalStore writes images under a configured directory, naming each file by
// a fresh UUID so uploads never collide or overwrite one another.
type LocalStore struct {
	dir          string
	publicPrefix string
	maxBytes     int64
	logger       *slog.Logger
}

// NewLocalStore creates the upload directory if needed and returns the store.
func NewLocalStore(cfg *config.Config, logger *slog.Logger) (ImageStore, error) {
	uploadCfg := cfg.Upload

	if err := os.MkdirAll(uploadCfg.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	return &LocalStore{
		dir:          uploadCfg.Dir,
		publicPrefix: uploadCfg.PublicPrefix,
		maxBytes:     int64(uploadCfg.MaxSizeMB) << 20,
		logger:       logger,
	}, nil
}

// Save validates the upload and writes it to disk. Only files whose content
// sniffs as an image are accepted; the client-supplied filename and content
// type are never trusted.
func (s *LocalStore) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > s.maxBytes {
		return "", domainerrors.ErrImageTooLarge.WrapMessage("profile image rejected")
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read uploaded file")
	}

	contentType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return "", domainerrors.ErrUnsupportedImageType.WithDetails("detected content type " + contentType)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", errors.Wrap(err, "failed to rewind uploaded file")
	}

	name := uuid.New().String() + extensionFor(contentType, file.Filename)
	destPath := filepath.Join(s.dir, name)

	dest, err := os.Create(destPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to create image file")
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		// Best effort cleanup of the partial file.
		os.Remove(destPath)

		return "", errors.Wrap(err, "failed to write image file")
	}

	s.logger.Debug("Stored profile image", slog.String("file", name), slog.Int64("bytes", file.Size))

	return s.publicPrefix + "/" + name, nil
}

// extensionFor derives the stored extension from the sniffed content type,
// falling back to the original filename's extension.
func extensionFor(contentType, filename string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return strings.ToLower(filepath.Ext(filename))
	}
}
