package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerpro_backend/pkg/apperrors"
)

// fakeStorage records what was saved and deleted.
type fakeStorage struct {
	savedFolder string
	savedName   string
	deleted     []string
}

func (f *fakeStorage) Save(_ context.Context, folder, filename string, r io.Reader, _ int64, _ string) (string, error) {
	f.savedFolder = folder
	f.savedName = filename
	return "/uploads/" + folder + "/" + filename, nil
}

func (f *fakeStorage) Delete(_ context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

func fileHeader(t *testing.T, field, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	reader := multipart.NewReader(&buf, mw.Boundary())
	form, err := reader.ReadForm(10 << 20)
	require.NoError(t, err)
	require.NotEmpty(t, form.File[field])
	return form.File[field][0]
}

func TestStoreNamesFilesByAccount(t *testing.T) {
	fake := &fakeStorage{}
	svc := NewUploadService(fake, 5)

	header := fileHeader(t, "cvFile", "resume.pdf", "application/pdf", []byte("%PDF"))
	url, filename, err := svc.Store(context.Background(), "cvFile", "acc-42", header)
	require.NoError(t, err)

	assert.Equal(t, "cvs", fake.savedFolder)
	assert.True(t, strings.HasPrefix(filename, "user-acc-42-"))
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	assert.Contains(t, url, filename)
}

func TestStoreRejectsWrongMimeType(t *testing.T) {
	svc := NewUploadService(&fakeStorage{}, 5)

	header := fileHeader(t, "cvFile", "photo.png", "image/png", []byte("png"))
	_, _, err := svc.Store(context.Background(), "cvFile", "acc-42", header)
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
}

func TestStoreAcceptsAnyImageForLogo(t *testing.T) {
	svc := NewUploadService(&fakeStorage{}, 5)

	header := fileHeader(t, "logoFile", "logo.webp", "image/webp", []byte("img"))
	_, _, err := svc.Store(context.Background(), "logoFile", "acc-42", header)
	assert.NoError(t, err)
}

func TestStoreRejectsOversizedFile(t *testing.T) {
	svc := NewUploadService(&fakeStorage{}, 1)

	header := fileHeader(t, "cvFile", "big.pdf", "application/pdf", bytes.Repeat([]byte("a"), 2<<20))
	_, _, err := svc.Store(context.Background(), "cvFile", "acc-42", header)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestStoreRejectsMissingFile(t *testing.T) {
	svc := NewUploadService(&fakeStorage{}, 5)

	_, _, err := svc.Store(context.Background(), "cvFile", "acc-42", nil)
	assert.ErrorIs(t, err, apperrors.ErrFileMissing)
}
