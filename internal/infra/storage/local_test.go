package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes is a minimal PNG header, enough for content sniffing.
var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	store, err := NewLocalStore(t.TempDir(), "/static/uploads", []string{"png", "jpg", "jpeg", "gif", "webp"})
	require.NoError(t, err)
	return store
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain name untouched", "waterfall.png", "waterfall.png"},
		{"path traversal stripped", "../../evil.png", "evil.png"},
		{"windows separators stripped", `..\..\evil.png`, "evil.png"},
		{"spaces and parens replaced", "my photo (1).png", "my_photo_1_.png"},
		{"leading dots trimmed", "..hidden.png", "hidden.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.in))
		})
	}
}

func TestLocalStore_AllowedExtension(t *testing.T) {
	store := newTestStore(t)

	assert.True(t, store.AllowedExtension("falls.png"))
	assert.True(t, store.AllowedExtension("FALLS.PNG"), "extension check must be case-insensitive")
	assert.True(t, store.AllowedExtension("pic.webp"))
	assert.False(t, store.AllowedExtension("doc.pdf"))
	assert.False(t, store.AllowedExtension("noextension"))
	assert.False(t, store.AllowedExtension(""))
}

func TestLocalStore_SaveAndRemove(t *testing.T) {
	store := newTestStore(t)

	fh := makeFileHeader(t, "secret falls.png", pngBytes)
	name, url, err := store.Save(fh)
	require.NoError(t, err)

	assert.Regexp(t, `^\d{8}_\d{6}_secret_falls\.png$`, name)
	assert.Equal(t, "/static/uploads/"+name, url)

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(filepath.Join(store.Dir(), name))
	assert.True(t, os.IsNotExist(err))

	// removing again, or removing nonsense, is not an error
	assert.NoError(t, store.Remove(url))
	assert.NoError(t, store.Remove(""))
	assert.NoError(t, store.Remove("/elsewhere/file.png"))
}

func TestLocalStore_SaveRejectsNonImageContent(t *testing.T) {
	store := newTestStore(t)

	fh := makeFileHeader(t, "fake.png", []byte("just some text pretending to be a png"))
	_, _, err := store.Save(fh)
	assert.ErrorIs(t, err, ErrNotAnImage)

	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected upload must not leave a file behind")
}

func TestLocalStore_SaveNeverEscapesUploadDir(t *testing.T) {
	store := newTestStore(t)

	fh := makeFileHeader(t, "../../evil.png", pngBytes)
	name, _, err := store.Save(fh)
	require.NoError(t, err)

	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, "..")
	_, err = os.Stat(filepath.Join(store.Dir(), name))
	assert.NoError(t, err)
}
