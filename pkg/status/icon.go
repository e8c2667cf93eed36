// Package status renders the pause state as the tray icon.
package status

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	ico "github.com/sergeymakinen/go-ico"
)

// Icon geometry.
const (
	IconWidth  = 16
	IconHeight = 16
	IconSize   = IconWidth * IconHeight * 4
)

var (
	activeColor = [4]byte{0, 255, 0, 100}
	pausedColor = [4]byte{255, 0, 0, 100}
)

// IconImage returns the raw RGBA bitmap for the given state: a uniform
// translucent green block when active, translucent red when paused.
func IconImage(paused bool) []byte {
	col := activeColor
	if paused {
		col = pausedColor
	}

	rgba := make([]byte, 0, IconSize)
	for i := 0; i < IconWidth*IconHeight; i++ {
		rgba = append(rgba, col[:]...)
	}
	return rgba
}

// EncodePNG encodes a raw, non-premultiplied RGBA bitmap as PNG.
func EncodePNG(rgba []byte, width, height int) ([]byte, error) {
	img, err := newImage(rgba, width, height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeICO encodes a raw, non-premultiplied RGBA bitmap as a single-image
// ICO file.
func EncodeICO(rgba []byte, width, height int) ([]byte, error) {
	img, err := newImage(rgba, width, height)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode ico: %w", err)
	}
	return buf.Bytes(), nil
}

func newImage(rgba []byte, width, height int) (*image.NRGBA, error) {
	if len(rgba) != width*height*4 {
		return nil, fmt.Errorf("bitmap is %d bytes, want %d for %dx%d", len(rgba), width*height*4, width, height)
	}
	return &image.NRGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}
