package enrich

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemKey(t *testing.T) {
	// Keys are the MD5 hex of the URL; the crawler names artifacts the
	// same way, so both sides must agree byte for byte.
	assert.Equal(t, "38c3268d1db25589731492a3e433e09f", ItemKey("https://fraud.example/win"))
	assert.Equal(t, "f24a099592bdccd543222795852b99b8", ItemKey("https://example.com/offer?id=1"))
	assert.NotEqual(t, ItemKey("https://a.example"), ItemKey("https://b.example"))
}

func TestArtifactPaths(t *testing.T) {
	url := "https://fraud.example/win"
	assert.Equal(t, filepath.Join("raw_html", "38c3268d1db25589731492a3e433e09f.html"), HTMLPath(url))
	assert.Equal(t, filepath.Join("screenshots", "38c3268d1db25589731492a3e433e09f.png"), ScreenshotPath(url))
}

func TestFileStoreAbs(t *testing.T) {
	store := NewFileStore("/data/storage")

	tests := []struct {
		name    string
		rel     string
		want    string
		wantErr bool
	}{
		{name: "plain relative path", rel: "raw_html/x.html", want: "/data/storage/raw_html/x.html"},
		{name: "dot segments collapse inside root", rel: "raw_html/../screenshots/y.png", want: "/data/storage/screenshots/y.png"},
		{name: "empty path", rel: "", wantErr: true},
		{name: "absolute path", rel: "/etc/passwd", wantErr: true},
		{name: "parent escape", rel: "../secrets", wantErr: true},
		{name: "nested parent escape", rel: "a/../../secrets", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Abs(tt.rel)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileStoreRead(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "raw_html"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "raw_html", "a.html"), []byte("<p>hi</p>"), 0o644))

	store := NewFileStore(root)

	data, err := store.Read("raw_html/a.html")
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))

	_, err = store.Read("raw_html/missing.html")
	assert.Error(t, err)

	_, err = store.Read("../outside")
	assert.Error(t, err)
}

func TestNewFileStorePanicsOnEmptyRoot(t *testing.T) {
	assert.Panics(t, func() { NewFileStore("") })
}
