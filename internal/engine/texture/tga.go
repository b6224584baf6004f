package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types handled by decodeTGA.
const (
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
)

var errTGATruncated = errors.New("tga: truncated data")

// tgaMaxRun is the most pixels one RLE packet can cover.
const tgaMaxRun = 128

// decodeTGA decodes an uncompressed or RLE true-color TGA image with 24 or
// 32 bits per pixel. TGA has no magic number, so callers pick it by name.
// Alpha in TGA files is straight, so the result is NRGBA.
func decodeTGA(data []byte) (*image.NRGBA, error) {
	if len(data) < 18 {
		return nil, errTGATruncated
	}

	idLength := int(data[0])
	if data[1] != 0 {
		return nil, fmt.Errorf("tga: color-mapped images not supported")
	}
	kind := data[2]
	if kind != tgaTrueColor && kind != tgaTrueColorRLE {
		return nil, fmt.Errorf("tga: unsupported image type %d", kind)
	}
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16]) / 8
	if bpp != 3 && bpp != 4 {
		return nil, fmt.Errorf("tga: unsupported bit depth %d", data[16])
	}
	topDown := data[17]&0x20 != 0

	if 18+idLength > len(data) {
		return nil, errTGATruncated
	}

	src := data[18+idLength:]
	total := width * height
	// The header alone must not decide the allocation size: the payload has
	// to be able to describe every pixel first.
	if len(src) < minTGAPayload(kind, total, bpp) {
		return nil, fmt.Errorf("%dx%d image: %w", width, height, errTGATruncated)
	}

	d := tgaPixels{
		img:     image.NewNRGBA(image.Rect(0, 0, width, height)),
		src:     src,
		bpp:     bpp,
		topDown: topDown,
	}
	if kind == tgaTrueColor {
		for d.n < total {
			d.put(d.read())
		}
		return d.img, nil
	}

	for d.n < total {
		if len(d.src) == 0 {
			return nil, errTGATruncated
		}
		packet := d.src[0]
		d.src = d.src[1:]
		count := int(packet&0x7f) + 1
		if packet&0x80 != 0 {
			if len(d.src) < bpp {
				return nil, errTGATruncated
			}
			c := d.read()
			for i := 0; i < count && d.n < total; i++ {
				d.put(c)
			}
			continue
		}
		if len(d.src) < count*bpp {
			return nil, errTGATruncated
		}
		for i := 0; i < count && d.n < total; i++ {
			d.put(d.read())
		}
	}
	return d.img, nil
}

// minTGAPayload returns the fewest payload bytes that can encode total
// pixels. For RLE that is one run packet per tgaMaxRun pixels.
func minTGAPayload(kind byte, total, bpp int) int {
	if kind == tgaTrueColor {
		return total * bpp
	}
	packets := (total + tgaMaxRun - 1) / tgaMaxRun
	return packets * (1 + bpp)
}

// tgaPixels walks BGR(A) source pixels into an NRGBA image in file order.
type tgaPixels struct {
	img     *image.NRGBA
	src     []byte
	bpp     int
	n       int
	topDown bool
}

func (d *tgaPixels) read() color.NRGBA {
	c := color.NRGBA{B: d.src[0], G: d.src[1], R: d.src[2], A: 0xff}
	if d.bpp == 4 {
		c.A = d.src[3]
	}
	d.src = d.src[d.bpp:]
	return c
}

func (d *tgaPixels) put(c color.NRGBA) {
	w := d.img.Rect.Dx()
	x, y := d.n%w, d.n/w
	if !d.topDown {
		y = d.img.Rect.Dy() - 1 - y
	}
	d.img.SetNRGBA(x, y, c)
	d.n++
}
