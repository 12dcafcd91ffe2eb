//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter uploads a Framebuffer into an ebiten image and draws it.
type Painter struct {
	img *ebiten.Image
	buf []byte
}

// NewPainter returns an empty painter; the image is sized on first Blit.
func NewPainter() *Painter { return &Painter{} }

// Blit uploads fb and draws it scaled to fill dst.
func (p *Painter) Blit(dst *ebiten.Image, fb *Framebuffer) {
	if p.img == nil || p.img.Bounds().Dx() != fb.W || p.img.Bounds().Dy() != fb.H {
		if p.img != nil {
			p.img.Dispose()
		}
		p.img = ebiten.NewImage(fb.W, fb.H)
	}
	p.buf = fb.RGBA(p.buf)
	p.img.WritePixels(p.buf[:4*fb.W*fb.H])

	op := &ebiten.DrawImageOptions{}
	db := dst.Bounds()
	op.GeoM.Scale(float64(db.Dx())/float64(fb.W), float64(db.Dy())/float64(fb.H))
	dst.DrawImage(p.img, op)
}
