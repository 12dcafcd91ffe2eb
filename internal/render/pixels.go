package render

// fillPackedRGBA converts packed 0xRRGGBB pixels into opaque RGBA bytes in buf.
func fillPackedRGBA(buf []byte, pix []uint32) {
	for i, c := range pix {
		base := i * 4
		buf[base+0] = uint8(c >> 16)
		buf[base+1] = uint8(c >> 8)
		buf[base+2] = uint8(c)
		buf[base+3] = 0xFF
	}
}

// fillTexture tiles tex over the clipped block at (x0, y0) with size n,
// shading every texel by k.
func fillTexture(fb *Framebuffer, x0, y0, n int, tex Texture, k float64) {
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fb.Set(x0+x, y0+y, Shade(tex.At(x, y), k))
		}
	}
}
