package ggspy

import (
	"image"
	"time"

	xdraw "golang.org/x/image/draw"
)

// Snapshot is a frame image captured alongside a command stream.
// It is taken at recording finalization from contexts that implement
// [Imager], so the pixels correspond to the last recorded call.
type Snapshot struct {
	// Image is the full-resolution frame.
	Image image.Image

	// Width and Height are the frame dimensions in pixels.
	Width  int
	Height int

	// TakenAt is when the snapshot was read back.
	TakenAt time.Time
}

// NewSnapshot wraps a frame image in a Snapshot.
// Returns nil for a nil or empty image.
func NewSnapshot(img image.Image) *Snapshot {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil
	}
	return &Snapshot{
		Image:   img,
		Width:   b.Dx(),
		Height:  b.Dy(),
		TakenAt: time.Now(),
	}
}

// Thumbnail returns the snapshot scaled so its longer edge is at most
// maxDim pixels, preserving aspect ratio. The original image is returned
// unscaled when it already fits.
func (s *Snapshot) Thumbnail(maxDim int) image.Image {
	if maxDim <= 0 || (s.Width <= maxDim && s.Height <= maxDim) {
		return s.Image
	}

	w, h := s.Width, s.Height
	if w >= h {
		h = h * maxDim / w
		w = maxDim
	} else {
		w = w * maxDim / h
		h = maxDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), s.Image, s.Image.Bounds(), xdraw.Over, nil)
	return dst
}
