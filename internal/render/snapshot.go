package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Palette holds the colors used for live and dead cells.
type Palette struct {
	On  color.Color
	Off color.Color
}

// DefaultPalette draws live cells black on white.
func DefaultPalette() Palette {
	return Palette{On: color.Black, Off: color.White}
}

// Image renders a packed w*h grid into an RGBA image, one pixel per cell.
func Image(words []uint32, w, h int, p Palette) (*image.RGBA, error) {
	if err := checkWords(words, w, h); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	FillPackedRGBA(img.Pix, words, w*h, p.On, p.Off)
	return img, nil
}

// WritePNG encodes the grid as a PNG, scaling each cell to scale*scale pixels.
func WritePNG(out io.Writer, words []uint32, w, h, scale int, p Palette) error {
	img, err := Image(words, w, h, p)
	if err != nil {
		return err
	}
	if scale > 1 {
		img = upscale(img, scale)
	}
	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// WriteText writes the grid as rows of '#' (alive) and '.' (dead).
func WriteText(out io.Writer, words []uint32, w, h int) error {
	if err := checkWords(words, w, h); err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	line := make([]byte, w+1)
	line[w] = '\n'
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			line[x] = '.'
			if words[i>>5]&(1<<(uint(i)&31)) != 0 {
				line[x] = '#'
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func checkWords(words []uint32, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("render: invalid size %dx%d", w, h)
	}
	if need := (w*h + 31) / 32; len(words) < need {
		return fmt.Errorf("render: %dx%d grid needs %d words, got %d", w, h, need, len(words))
	}
	return nil
}

func upscale(src *image.RGBA, scale int) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	for y := 0; y < dst.Bounds().Dy(); y++ {
		srcRow := src.Pix[(y/scale)*src.Stride:]
		dstRow := dst.Pix[y*dst.Stride:]
		for x := 0; x < dst.Bounds().Dx(); x++ {
			copy(dstRow[x*4:x*4+4], srcRow[(x/scale)*4:(x/scale)*4+4])
		}
	}
	return dst
}
