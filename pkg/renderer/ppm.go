package renderer

import (
	"bufio"
	"fmt"
	"image"
	"io"
)

// WritePPM encodes the image in the plain-text PPM "P3" format: a format
// tag, the dimensions, the maximum channel value, then one whitespace
// separated RGB triple per pixel, one row per line, top to bottom.
func WritePPM(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if x > bounds.Min.X {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			// RGBA returns 16-bit channels; the sink takes 8-bit values
			if _, err := fmt.Fprintf(bw, "%d %d %d", r>>8, g>>8, b>>8); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
