package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// ErrNotAnImage is returned when an uploaded file's content does not sniff
// as an image, regardless of its extension.
var ErrNotAnImage = errors.New("file content is not an image")

// LocalStore persists uploaded images under a single directory and hands
// back server-relative URL paths for them.
type LocalStore struct {
	dir       string
	urlPrefix string
	allowed   map[string]struct{}
}

func NewLocalStore(dir, urlPrefix string, allowedExts []string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	allowed := make(map[string]struct{}, len(allowedExts))
	for _, ext := range allowedExts {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = struct{}{}
	}
	return &LocalStore{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		allowed:   allowed,
	}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

// AllowedExtension reports whether the filename carries one of the
// configured image extensions. The check is case-insensitive.
func (s *LocalStore) AllowedExtension(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return false
	}
	_, ok := s.allowed[ext]
	return ok
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename strips path components and replaces characters that are
// unsafe in a filename.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}

// Save writes the uploaded file under the store directory as
// <timestamp>_<sanitized original name> and returns the stored name plus
// the servable URL path. Content that does not sniff as an image is
// rejected with ErrNotAnImage and nothing is written.
func (s *LocalStore) Save(fh *multipart.FileHeader) (string, string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		return "", "", err
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", "", ErrNotAnImage
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", "", err
	}

	name := fmt.Sprintf("%s_%s", time.Now().Format("20060102_150405"), SanitizeFilename(fh.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", "", err
	}

	return name, s.urlPrefix + "/" + name, nil
}

// Remove deletes a stored file given its URL path. Empty, foreign, or
// already-gone paths are not errors.
func (s *LocalStore) Remove(url string) error {
	if url == "" || !strings.HasPrefix(url, s.urlPrefix+"/") {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(url, s.urlPrefix+"/"))
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
