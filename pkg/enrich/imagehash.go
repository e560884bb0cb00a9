package enrich

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	"github.com/corona10/goimagehash"
	"github.com/nfnt/resize"
)

const (
	waveletInputSide = 64
	waveletHashSide  = 8
)

// HashImage computes the four perceptual hashes stored per screenshot:
// average, difference, perception, and Haar wavelet.
func HashImage(img image.Image) ([]string, error) {
	avg, err := goimagehash.AverageHash(img)
	if err != nil {
		return nil, fmt.Errorf("average hash failed: %w", err)
	}
	diff, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return nil, fmt.Errorf("difference hash failed: %w", err)
	}
	perc, err := goimagehash.PerceptionHash(img)
	if err != nil {
		return nil, fmt.Errorf("perception hash failed: %w", err)
	}
	return []string{
		avg.ToString(),
		diff.ToString(),
		perc.ToString(),
		WaveletHash(img),
	}, nil
}

// HashImageFile decodes the PNG or JPEG at path and hashes it.
func HashImageFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return HashImage(img)
}

// WaveletHash computes a 64-bit Haar-pyramid hash: the image is reduced to
// 64x64 grayscale, low-pass filtered down to 8x8 by repeated 2x2 Haar
// averaging, and thresholded at the median.
func WaveletHash(img image.Image) string {
	small := resize.Resize(waveletInputSide, waveletInputSide, img, resize.Bilinear)
	m := grayMatrix(small)
	for len(m) > waveletHashSide {
		m = haarAverage(m)
	}

	vals := make([]float64, 0, waveletHashSide*waveletHashSide)
	for _, row := range m {
		vals = append(vals, row...)
	}
	med := median(vals)

	var hash uint64
	for i, v := range vals {
		if v > med {
			hash |= 1 << uint(i)
		}
	}
	return fmt.Sprintf("w:%016x", hash)
}

func grayMatrix(img image.Image) [][]float64 {
	b := img.Bounds()
	m := make([][]float64, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := make([]float64, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			row[x] = 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(bl)
		}
		m[y] = row
	}
	return m
}

// haarAverage keeps the low-frequency band of one Haar decomposition level.
func haarAverage(m [][]float64) [][]float64 {
	h := len(m) / 2
	w := len(m[0]) / 2
	out := make([][]float64, h)
	for y := range out {
		row := make([]float64, w)
		for x := range row {
			row[x] = (m[2*y][2*x] + m[2*y][2*x+1] + m[2*y+1][2*x] + m[2*y+1][2*x+1]) / 4
		}
		out[y] = row
	}
	return out
}

func median(vals []float64) float64 {
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
