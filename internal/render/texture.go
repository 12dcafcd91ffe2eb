package render

import (
	"errors"
	"fmt"

	"maze-caster/internal/core"
)

// ErrBadTexture is returned for an empty or non-rectangular color matrix.
var ErrBadTexture = errors.New("texture must be a non-empty rectangular matrix")

// Texture is a small fixed-size color matrix indexed [row][col].
type Texture [][]uint32

// Validate checks that the texture can be sampled.
func (t Texture) Validate() error {
	if len(t) == 0 || len(t[0]) == 0 {
		return ErrBadTexture
	}
	for _, row := range t {
		if len(row) != len(t[0]) {
			return ErrBadTexture
		}
	}
	return nil
}

// Size returns the texture width and height.
func (t Texture) Size() (w, h int) { return len(t[0]), len(t) }

// At samples the texture with wrapping integer coordinates.
func (t Texture) At(x, y int) uint32 {
	w, h := t.Size()
	return t[mod(y, h)][mod(x, w)]
}

// Sample reads the texel at normalised coordinates u, v in [0, 1).
func (t Texture) Sample(u, v float64) uint32 {
	w, h := t.Size()
	return t.At(int(u*float64(w)), int(v*float64(h)))
}

// Base returns the top-left texel, used for flat fills.
func (t Texture) Base() uint32 { return t[0][0] }

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

// Palette maps wall symbols to textures. It is filled once at startup and only
// read while rendering.
type Palette struct {
	textures map[core.Symbol]Texture
	fallback Texture
}

// NewPalette returns a palette whose unknown symbols resolve to fallback.
func NewPalette(fallback Texture) (*Palette, error) {
	if err := fallback.Validate(); err != nil {
		return nil, fmt.Errorf("fallback: %w", err)
	}
	return &Palette{textures: map[core.Symbol]Texture{}, fallback: fallback}, nil
}

// Register adds the texture for a wall symbol.
func (p *Palette) Register(sym core.Symbol, tex Texture) error {
	if !sym.IsWall() {
		return fmt.Errorf("symbol %q is not a wall", rune(sym))
	}
	if err := tex.Validate(); err != nil {
		return fmt.Errorf("symbol %q: %w", rune(sym), err)
	}
	p.textures[sym] = tex
	return nil
}

// Texture resolves the texture for sym.
func (p *Palette) Texture(sym core.Symbol) Texture {
	if tex, ok := p.textures[sym]; ok {
		return tex
	}
	return p.fallback
}

var (
	brickTexture = Texture{
		{0xFF5733, 0xFF5733, 0xC70039, 0xC70039},
		{0xFF5733, 0xFF5733, 0xC70039, 0xC70039},
		{0x900C3F, 0x900C3F, 0x581845, 0x581845},
		{0x900C3F, 0x900C3F, 0x581845, 0x581845},
	}
	stoneTexture = Texture{
		{0x7A7A7A, 0x7A7A7A, 0xFF5733, 0xFF5733},
		{0x7A7A7A, 0x7A7A7A, 0xFF5733, 0xFF5733},
		{0x5A5A5A, 0x5A5A5A, 0x4A4A4A, 0x4A4A4A},
		{0x5A5A5A, 0x5A5A5A, 0x4A4A4A, 0x4A4A4A},
	}
	rustTexture = Texture{
		{0x9A9A9A, 0x9A9A9A, 0x7A1A1A, 0x7A1A1A},
		{0x9A9A9A, 0x9A9A9A, 0x7A1A1A, 0x7A1A1A},
		{0x7A7A7A, 0x7A7A7A, 0x6A6A6A, 0x6A6A6A},
		{0x7A7A7A, 0x7A7A7A, 0x6A6A6A, 0x6A6A6A},
	}

	// PlayerSprite is drawn centred on the player in the top-down view.
	PlayerSprite = Texture{
		{0xFFFFFF, 0x000000, 0xFFFFFF},
		{0x000000, 0xFFFFFF, 0x000000},
		{0xFFFFFF, 0x000000, 0xFFFFFF},
	}
)

// DefaultPalette registers the built-in wall textures: the classic '+', '#' and
// '*' tables and two automaton patterns for '%' and '&'.
func DefaultPalette() *Palette {
	p, err := NewPalette(brickTexture)
	if err != nil {
		panic(err)
	}
	textures := map[core.Symbol]Texture{
		'+': brickTexture,
		'#': stoneTexture,
		'*': rustTexture,
		'%': AutomatonTexture(90, 16, 16, 0xC8B27A, 0x4A3B22),
		'&': AutomatonTexture(30, 16, 16, 0x7FA6C9, 0x1F2F40),
	}
	for sym, tex := range textures {
		if err := p.Register(sym, tex); err != nil {
			panic(err)
		}
	}
	return p
}
