package render

import "image"

// Framebuffer is a flat row-major buffer of packed 0xRRGGBB pixels.
type Framebuffer struct {
	W, H int
	pix  []uint32
}

// NewFramebuffer allocates a w*h buffer.
func NewFramebuffer(w, h int) *Framebuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Framebuffer{W: w, H: h, pix: make([]uint32, w*h)}
}

// Pixels exposes the backing slice.
func (fb *Framebuffer) Pixels() []uint32 { return fb.pix }

// Index returns the linear slice index for (x, y).
func (fb *Framebuffer) Index(x, y int) int { return y*fb.W + x }

// Clear fills the whole buffer with c.
func (fb *Framebuffer) Clear(c uint32) {
	for i := range fb.pix {
		fb.pix[i] = c
	}
}

// Set writes one pixel. Writes outside the buffer are dropped.
func (fb *Framebuffer) Set(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return
	}
	fb.pix[y*fb.W+x] = c
}

// At reads one pixel. Reads outside the buffer return 0.
func (fb *Framebuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return 0
	}
	return fb.pix[y*fb.W+x]
}

// FillRect fills the clipped rectangle [x0, x0+w) x [y0, y0+h).
func (fb *Framebuffer) FillRect(x0, y0, w, h int, c uint32) {
	x1, y1 := min(x0+w, fb.W), min(y0+h, fb.H)
	x0, y0 = max(x0, 0), max(y0, 0)
	for y := y0; y < y1; y++ {
		row := fb.pix[y*fb.W : (y+1)*fb.W]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// RGBA converts the buffer to 4-byte RGBA pixels in buf, which must hold
// 4*W*H bytes. It returns buf for chaining.
func (fb *Framebuffer) RGBA(buf []byte) []byte {
	if len(buf) < 4*len(fb.pix) {
		buf = make([]byte, 4*len(fb.pix))
	}
	fillPackedRGBA(buf, fb.pix)
	return buf
}

// Image copies the buffer into an opaque *image.RGBA.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.W, fb.H))
	fillPackedRGBA(img.Pix, fb.pix)
	return img
}
