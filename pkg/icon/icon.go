// Package icon renders the Discourse mark programmatically, so the repository
// ships no binary image assets.
//
// Three variants cover the platforms' tray conventions:
//   - Tray: blue disc with a white "D", for trays that render full color
//   - DarkModeTray: inverted disc for dark tray backgrounds
//   - Template: plain black glyph with alpha, for the macOS menu bar, which
//     tints template icons itself
//
// Tray icons are 48×48 pixels for crisp display on KDE and GNOME; App renders
// the same mark at arbitrary sizes for the about dialog.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Size is the standard system tray icon size (48×48 for KDE/GNOME).
const Size = 48

// maxSize bounds App renders so a bad manifest value cannot allocate wildly.
const maxSize = 1024

var (
	brandBlue = color.RGBA{27, 144, 255, 255}  // disc fill
	white     = color.RGBA{255, 255, 255, 255} // glyph on the disc
	black     = color.RGBA{0, 0, 0, 255}       // template glyph
)

// Tray renders the color tray icon.
func Tray() ([]byte, error) {
	return renderDisc(Size, brandBlue, white)
}

// DarkModeTray renders the tray icon variant for dark tray backgrounds.
func DarkModeTray() ([]byte, error) {
	return renderDisc(Size, white, brandBlue)
}

// Template renders the macOS menu bar template icon: the bare glyph in black
// on a transparent background. The OS derives light and dark renditions from
// the alpha channel.
func Template() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	if err := drawGlyph(img, "D", black, glyphPoints(Size), Size/2, Size/2); err != nil {
		return nil, err
	}
	return encode(img)
}

// App renders the application icon at the given size, for the about dialog
// and window decorations.
func App(size int) ([]byte, error) {
	if size <= 0 || size > maxSize {
		return nil, fmt.Errorf("icon size out of range: %d", size)
	}
	return renderDisc(size, brandBlue, white)
}

// Scale resizes a PNG icon to size×size pixels.
func Scale(iconData []byte, size int) ([]byte, error) {
	if size <= 0 || size > maxSize {
		return nil, fmt.Errorf("icon size out of range: %d", size)
	}
	src, err := png.Decode(bytes.NewReader(iconData))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return encode(dst)
}

// renderDisc draws a filled disc with a centered "D" and encodes it as PNG.
func renderDisc(size int, disc, letter color.RGBA) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	radius := float64(size) / 2
	for py := range size {
		for px := range size {
			dx := float64(px) - radius + 0.5
			dy := float64(py) - radius + 0.5
			if math.Sqrt(dx*dx+dy*dy) <= radius {
				img.Set(px, py, disc)
			}
		}
	}

	if err := drawGlyph(img, "D", letter, glyphPoints(size), size/2, size/2); err != nil {
		return nil, err
	}
	return encode(img)
}

// glyphPoints picks a font size that fills about two thirds of the icon,
// which matches a 32 point glyph on the 48 pixel tray icon.
func glyphPoints(size int) float64 {
	return float64(size) * 2 / 3
}

// drawGlyph renders bold centered text using Go's embedded monospace font.
func drawGlyph(img *image.RGBA, text string, fill color.RGBA, points float64, centerX, centerY int) error {
	face, err := opentype.Parse(gomonobold.TTF)
	if err != nil {
		return fmt.Errorf("parse font: %w", err)
	}

	fontFace, err := opentype.NewFace(face, &opentype.FaceOptions{
		Size: points,
		DPI:  72,
	})
	if err != nil {
		return fmt.Errorf("create font face: %w", err)
	}
	defer fontFace.Close() //nolint:errcheck // Close error is not critical for rendering

	bounds, advance := font.BoundString(fontFace, text)
	textWidth := advance.Ceil()

	// The visual center of the text sits (bounds.Max.Y + bounds.Min.Y)/2 above
	// the baseline, so shift the baseline to center the glyph vertically.
	visualCenter := (bounds.Max.Y + bounds.Min.Y) / 2
	baselineY := fixed.I(centerY) - visualCenter
	x := fixed.I(centerX - textWidth/2)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fill),
		Face: fontFace,
		Dot:  fixed.Point26_6{X: x, Y: baselineY},
	}
	drawer.DrawString(text)
	return nil
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	if buf.Len() == 0 {
		return nil, errors.New("encoded empty icon")
	}
	return buf.Bytes(), nil
}
