// Package imaging scales cached QR images for printing.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// MaxDimension is the largest width or height a scaled QR image may have.
const MaxDimension = 2048

// ScalePNG decodes PNG data and scales it so its larger dimension equals
// size, re-encoding as PNG. Uses nearest-neighbor interpolation so QR
// modules stay as crisp squares instead of blurring. Returns the input
// unchanged when size matches the current dimension or is not positive;
// size is capped at MaxDimension.
func ScalePNG(data []byte, size int) ([]byte, error) {
	if size <= 0 {
		return data, nil
	}
	if size > MaxDimension {
		size = MaxDimension
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding png: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == size && h <= size {
		return data, nil
	}

	// Preserve aspect ratio; QR codes are square but don't assume it.
	newW, newH := size, size
	if w > h {
		newH = h * size / w
	} else if h > w {
		newW = w * size / h
	}
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
