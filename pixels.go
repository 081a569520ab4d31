package fluid

import "image/color"

// PixelBuffer is a CPU-side RGBA8 image, row-major and tightly packed.
// It is mirrored into a GPU texture every frame.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a width×height×4 byte buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// Len returns the buffer size in bytes.
func (p *PixelBuffer) Len() int {
	return len(p.Pix)
}

// Fill overwrites every texel with c.
func (p *PixelBuffer) Fill(c color.RGBA) {
	pix := p.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// At returns the texel at (x, y). Out-of-range coordinates return the zero color.
func (p *PixelBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return color.RGBA{}
	}
	i := (y*p.Width + x) * 4
	return color.RGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: p.Pix[i+3]}
}

// Uniform reports whether every texel equals c.
func (p *PixelBuffer) Uniform(c color.RGBA) bool {
	pix := p.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i] != c.R || pix[i+1] != c.G || pix[i+2] != c.B || pix[i+3] != c.A {
			return false
		}
	}
	return true
}
