package render

// AutomatonTexture evolves a one-dimensional Wolfram rule down a w*h texture.
// Row 0 holds a single live centre cell and each later row is the next
// generation, wrapping at the edges. Live cells take on, the rest off.
func AutomatonTexture(rule uint8, w, h int, on, off uint32) Texture {
	w, h = max(w, 1), max(h, 1)
	cur := make([]uint8, w)
	next := make([]uint8, w)
	cur[w/2] = 1

	tex := make(Texture, h)
	for y := range tex {
		row := make([]uint32, w)
		for x, c := range cur {
			row[x] = off
			if c != 0 {
				row[x] = on
			}
		}
		tex[y] = row

		for x := 0; x < w; x++ {
			left := cur[(x-1+w)%w]
			right := cur[(x+1)%w]
			idx := left<<2 | cur[x]<<1 | right
			next[x] = (rule >> idx) & 1
		}
		cur, next = next, cur
	}
	return tex
}
