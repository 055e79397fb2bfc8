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

func TestLocalStorage_SaveDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "/uploads/"})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "resumes/a.pdf", strings.NewReader("%PDF-1.4"), "application/pdf"))

	data, err := os.ReadFile(filepath.Join(dir, "resumes", "a.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
	assert.Equal(t, "/uploads/resumes/a.pdf", store.URL("resumes/a.pdf"))

	require.NoError(t, store.Delete(ctx, "resumes/a.pdf"))
	_, err = os.Stat(filepath.Join(dir, "resumes", "a.pdf"))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is not an error.
	require.NoError(t, store.Delete(ctx, "resumes/a.pdf"))
}

func TestLocalStorage_KeysStayInsideBase(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "files")
	store, err := NewLocalStorage(Config{BasePath: dir})
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), "../../escape.txt", strings.NewReader("x"), "text/plain"))

	_, err = os.Stat(filepath.Join(parent, "escape.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, err)

	assert.Error(t, store.Save(context.Background(), "", strings.NewReader("x"), "text/plain"))
}

func TestNew(t *testing.T) {
	s, err := New(Config{Type: "local", BasePath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = New(Config{Type: "ftp"})
	assert.Error(t, err)
}
