package collision

// Outline drops every on pixel whose in-bounds orthogonal neighbours are all on,
// turning a filled silhouette into its edge. A neighbour outside the mask does
// not count against a pixel, so a mask that is entirely on reduces to nothing.
func Outline(m Mask) Mask {
	out := NewMask(m.W, m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.Pix[y*m.W+x] {
				continue
			}
			surrounded := true
			if x > 0 {
				surrounded = surrounded && m.Pix[y*m.W+x-1]
			}
			if x < m.W-1 {
				surrounded = surrounded && m.Pix[y*m.W+x+1]
			}
			if y > 0 {
				surrounded = surrounded && m.Pix[(y-1)*m.W+x]
			}
			if y < m.H-1 {
				surrounded = surrounded && m.Pix[(y+1)*m.W+x]
			}
			if !surrounded {
				out.Pix[y*m.W+x] = true
			}
		}
	}
	return out
}

// OutlineAll applies Outline to every mask.
func OutlineAll(masks []Mask) []Mask {
	out := make([]Mask, len(masks))
	for i, m := range masks {
		out[i] = Outline(m)
	}
	return out
}
