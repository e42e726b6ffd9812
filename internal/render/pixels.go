package render

import "image/color"

// FillPackedRGBA converts the first cells bits of a packed bit-set into RGBA
// pixels in buf. Bit i of word i/32 maps to pixel i. buf must hold at least
// 4*cells bytes.
func FillPackedRGBA(buf []byte, words []uint32, cells int, on, off color.Color) {
	onPx := rgba8(on)
	offPx := rgba8(off)
	for i := 0; i < cells; i++ {
		px := offPx
		if words[i>>5]&(1<<(uint(i)&31)) != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
