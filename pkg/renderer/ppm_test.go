package renderer

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestWritePPM(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 128, G: 128, B: 128, A: 255})

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 2\n255\n255 0 0 0 255 0\n0 0 255 128 128 128\n"
	if buf.String() != expected {
		t.Errorf("Expected output:\n%q\ngot:\n%q", expected, buf.String())
	}
}

func TestWritePPM_HeaderAndTripleCount(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 3))

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	fields := strings.Fields(buf.String())

	// Header: tag, width, height, max value
	if fields[0] != "P3" || fields[1] != "5" || fields[2] != "3" || fields[3] != "255" {
		t.Errorf("Unexpected header fields: %v", fields[:4])
	}

	// One RGB triple per pixel
	if got, want := len(fields)-4, 5*3*3; got != want {
		t.Errorf("Expected %d color values, got %d", want, got)
	}
}
