package coverart

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, side int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x + y) * 255 / (2 * side))})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestConvert(t *testing.T) {
	c := NewConverter()

	ascii, err := c.Convert(encodePNG(t, 64))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	lines := strings.Split(strings.TrimRight(ascii, "\n"), "\n")
	if len(lines) != asciiHeight {
		t.Errorf("got %d lines, want %d", len(lines), asciiHeight)
	}
	if ascii == c.Placeholder() {
		t.Error("Convert returned the placeholder for a valid image")
	}
}

func TestConvertFallsBackToPlaceholder(t *testing.T) {
	c := NewConverter()

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{"empty", nil, false},
		{"garbage", []byte("not an image"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != c.Placeholder() {
				t.Error("expected the placeholder")
			}
		})
	}
}
