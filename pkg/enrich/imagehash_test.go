package enrich

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// splitImage paints the left half white and the right half black when
// leftWhite, or the inverse otherwise.
func splitImage(side int, leftWhite bool) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			white := x < side/2
			if !leftWhite {
				white = !white
			}
			if white {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}
	return img
}

func TestHashImageProducesAllFourHashes(t *testing.T) {
	hashes, err := HashImage(splitImage(64, true))
	require.NoError(t, err)
	require.Len(t, hashes, 4)

	assert.Regexp(t, regexp.MustCompile(`^a:[0-9a-f]{16}$`), hashes[0])
	assert.Regexp(t, regexp.MustCompile(`^d:[0-9a-f]{16}$`), hashes[1])
	assert.Regexp(t, regexp.MustCompile(`^p:[0-9a-f]{16}$`), hashes[2])
	assert.Regexp(t, regexp.MustCompile(`^w:[0-9a-f]{16}$`), hashes[3])
}

func TestWaveletHashIsDeterministic(t *testing.T) {
	a := WaveletHash(splitImage(64, true))
	b := WaveletHash(splitImage(64, true))
	assert.Equal(t, a, b)
}

func TestWaveletHashDistinguishesImages(t *testing.T) {
	left := WaveletHash(splitImage(64, true))
	right := WaveletHash(splitImage(64, false))
	assert.NotEqual(t, left, right)
}

func TestWaveletHashUniformImageIsZero(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.Gray{Y: 128})
		}
	}
	// Every cell equals the median, so no bit clears the strict threshold.
	assert.Equal(t, "w:0000000000000000", WaveletHash(img))
}

func TestHashImageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, splitImage(64, true)))
	require.NoError(t, f.Close())

	hashes, err := HashImageFile(path)
	require.NoError(t, err)
	assert.Len(t, hashes, 4)
	assert.Equal(t, WaveletHash(splitImage(64, true)), hashes[3])
}

func TestHashImageFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := HashImageFile(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = HashImageFile(junk)
	assert.Error(t, err)
}
