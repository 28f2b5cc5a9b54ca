package render

import "image/color"

// Palette maps colors to the uint8 indices stored in a canvas grid. Index 0 is
// always the background.
type Palette struct {
	colors []color.RGBA
}

// Reset drops every color and installs bg as index 0.
func (p *Palette) Reset(bg color.RGBA) {
	p.colors = append(p.colors[:0], bg)
}

// Index returns the index for c, adding it when unseen. Once 256 colors are
// in use, unseen colors map to the last slot.
func (p *Palette) Index(c color.RGBA) uint8 {
	for i, existing := range p.colors {
		if existing == c {
			return uint8(i)
		}
	}
	if len(p.colors) >= 256 {
		return 255
	}
	p.colors = append(p.colors, c)
	return uint8(len(p.colors) - 1)
}

// Color returns the color stored at idx. Out-of-range indices clamp to the
// last entry; an empty palette yields transparent black.
func (p *Palette) Color(idx uint8) color.RGBA {
	if len(p.colors) == 0 {
		return color.RGBA{}
	}
	last := len(p.colors) - 1
	i := int(idx)
	if i > last {
		i = last
	}
	return p.colors[i]
}

// Len returns the number of colors in use.
func (p *Palette) Len() int { return len(p.colors) }
