package enrich

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore reads crawl artifacts below a fixed storage root. Queue
// messages carry root-relative paths, so everything is validated against
// escapes before touching the filesystem.
type FileStore struct {
	root string
}

// NewFileStore creates a store rooted at root.
func NewFileStore(root string) *FileStore {
	if root == "" {
		panic("enrich.NewFileStore: root must not be empty")
	}
	return &FileStore{root: filepath.Clean(root)}
}

// Root returns the storage root.
func (s *FileStore) Root() string { return s.root }

// Abs resolves a root-relative artifact path, rejecting absolute paths and
// anything that climbs out of the root.
func (s *FileStore) Abs(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("empty artifact path")
	}
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("artifact path %q must be relative", rel)
	}
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("artifact path %q escapes the storage root", rel)
	}
	return filepath.Join(s.root, clean), nil
}

// Read returns the contents of a root-relative artifact.
func (s *FileStore) Read(rel string) ([]byte, error) {
	abs, err := s.Abs(rel)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

// ItemKey is the artifact key for a URL: the crawler names raw HTML and
// screenshots by the MD5 hex of the source URL.
func ItemKey(url string) string {
	sum := md5.Sum([]byte(url))
	return hex.EncodeToString(sum[:])
}

// HTMLPath returns the conventional raw-HTML artifact path for a URL.
func HTMLPath(url string) string {
	return filepath.Join("raw_html", ItemKey(url)+".html")
}

// ScreenshotPath returns the conventional screenshot artifact path for a URL.
func ScreenshotPath(url string) string {
	return filepath.Join("screenshots", ItemKey(url)+".png")
}
