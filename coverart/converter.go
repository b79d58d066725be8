package coverart

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/qeesung/image2ascii/convert"
)

const (
	asciiWidth  = 25
	asciiHeight = 12
)

// Converter handles album cover art conversion to ASCII
type Converter struct {
	converter *convert.ImageConverter
}

// NewConverter creates a new cover art converter
func NewConverter() *Converter {
	return &Converter{
		converter: convert.NewImageConverter(),
	}
}

// Convert decodes encoded image bytes (JPEG or PNG) and renders them as
// ASCII art. On failure it returns the placeholder along with the error.
func (c *Converter) Convert(data []byte) (string, error) {
	if len(data) == 0 {
		return c.Placeholder(), nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return c.Placeholder(), fmt.Errorf("failed to decode: %w", err)
	}

	convertOptions := convert.DefaultOptions
	convertOptions.FixedWidth = asciiWidth
	convertOptions.FixedHeight = asciiHeight
	convertOptions.Colored = false // Disable ANSI colors for tview compatibility

	return c.converter.Image2ASCIIString(img, &convertOptions), nil
}

// Placeholder returns the text shown when cover art is not available
func (c *Converter) Placeholder() string {
	return `[darkgray]┌─────────────────────────┐
[darkgray]│                         │
[darkgray]│         ♫  ♪  ♫         │
[darkgray]│      No Cover Art       │
[darkgray]│         ♫  ♪  ♫         │
[darkgray]│                         │
[darkgray]└─────────────────────────┘`
}
