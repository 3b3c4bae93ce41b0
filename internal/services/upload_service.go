package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"careerpro_backend/internal/storage"
	"careerpro_backend/pkg/apperrors"
)

const defaultMaxUploadMB = 5

// Per-field MIME allow-lists. Logos take any image; documents take the
// common CV formats.
var allowedTypes = map[string][]string{
	"cvFile":               {"application/pdf", "application/msword", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	"verificationDocument": {"application/pdf", "application/msword", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	"logoFile":             {"image/"},
}

// Folder per upload kind.
var uploadFolders = map[string]string{
	"cvFile":               "cvs",
	"verificationDocument": "verification",
	"logoFile":             "logos",
}

type UploadService interface {
	// Store validates and persists a multipart file, returning the public
	// URL and the stored filename.
	Store(ctx context.Context, field string, accountID string, header *multipart.FileHeader) (url, filename string, err error)
	Remove(ctx context.Context, fileURL string) error
}

type uploadServiceImpl struct {
	storage storage.Storage
	maxSize int64
}

func NewUploadService(st storage.Storage, maxSizeMB int) UploadService {
	if maxSizeMB <= 0 {
		maxSizeMB = defaultMaxUploadMB
	}
	return &uploadServiceImpl{storage: st, maxSize: int64(maxSizeMB) << 20}
}

func (s *uploadServiceImpl) Store(ctx context.Context, field string, accountID string, header *multipart.FileHeader) (string, string, error) {
	if header == nil {
		return "", "", apperrors.ErrFileMissing
	}
	if header.Size > s.maxSize {
		return "", "", apperrors.ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !typeAllowed(field, contentType) {
		return "", "", apperrors.ErrInvalidFileType
	}

	folder, ok := uploadFolders[field]
	if !ok {
		folder = "misc"
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if ext == "" {
		ext = "bin"
	}
	filename := fmt.Sprintf("user-%s-%d.%s", accountID, time.Now().UnixNano(), ext)

	f, err := header.Open()
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	defer f.Close()

	url, err := s.storage.Save(ctx, folder, filename, f, header.Size, contentType)
	if err != nil {
		return "", "", apperrors.InternalError(err)
	}
	return url, filename, nil
}

func (s *uploadServiceImpl) Remove(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}
	return s.storage.Delete(ctx, fileURL)
}

func typeAllowed(field, contentType string) bool {
	allowed, ok := allowedTypes[field]
	if !ok {
		return true
	}
	for _, t := range allowed {
		if strings.HasSuffix(t, "/") {
			if strings.HasPrefix(contentType, t) {
				return true
			}
		} else if contentType == t {
			return true
		}
	}
	return false
}
