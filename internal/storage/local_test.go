package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	st, err := NewLocalStorage(dir, "")
	require.NoError(t, err)

	url, err := st.Save(context.Background(), "cvs", "user-1-123.pdf",
		strings.NewReader("%PDF"), 4, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/cvs/user-1-123.pdf", url)

	data, err := os.ReadFile(filepath.Join(dir, "cvs", "user-1-123.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))

	require.NoError(t, st.Delete(context.Background(), url))
	_, err = os.Stat(filepath.Join(dir, "cvs", "user-1-123.pdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorageDeleteMissingFileIsNoop(t *testing.T) {
	st, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	assert.NoError(t, st.Delete(context.Background(), "/uploads/cvs/never-existed.pdf"))
}

func TestLocalStorageDeleteRefusesTraversal(t *testing.T) {
	st, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)

	assert.NoError(t, st.Delete(context.Background(), "/uploads/../../etc/passwd"))
}
