package texture

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Decode reads a PNG, JPEG, GIF, BMP or TGA image and returns it as RGBA
// with the rows flipped so the first row is the bottom of the image,
// matching OpenGL's texture origin. TGA files are recognised by the
// extension of name.
func Decode(name string, r io.Reader) (*image.RGBA, error) {
	var img image.Image
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if img, err = decodeTGA(data); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	} else {
		var err error
		if img, _, err = image.Decode(r); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	}

	// draw.Src premultiplies straight-alpha sources such as NRGBA.
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	flipRows(rgba)

	return rgba, nil
}

// flipRows reverses the row order of img in place.
func flipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}
