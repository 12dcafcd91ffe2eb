package render

import (
	"image/color"
	"math"
)

// Fixed scene colors, packed as 0xRRGGBB.
const (
	SkyColor        uint32 = 0x3597C3
	FloorColor      uint32 = 0x72683E
	BackgroundColor uint32 = 0x1A1A1A
	TraceColor      uint32 = 0xFFFFFF
	MinimapFloor    uint32 = 0x202020
	MinimapPlayer   uint32 = 0xFF3030

	// CellShade darkens the flat top-down cell fill.
	CellShade = 0.7
)

// Unpack splits a packed color into channels.
func Unpack(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Pack joins channels into 0xRRGGBB.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Shade scales each channel independently by k and recombines them. Channels
// are truncated and kept within 8 bits.
func Shade(c uint32, k float64) uint32 {
	if math.IsNaN(k) || k <= 0 {
		return 0
	}
	r, g, b := Unpack(c)
	return Pack(scale(r, k), scale(g, k), scale(b, k))
}

func scale(ch uint8, k float64) uint8 {
	v := float64(ch) * k
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// RGBA converts a packed color for image and ebiten APIs.
func RGBA(c uint32) color.RGBA {
	r, g, b := Unpack(c)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
