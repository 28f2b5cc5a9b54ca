package render

import (
	"image/color"
	"math"

	"dodge/internal/core"
	"dodge/pkg/geom"
)

// Canvas rasterizes playfield primitives into a coarse grid of palette
// indices. Each sample covers a rectangle of the playfield.
type Canvas struct {
	field   core.Size
	grid    *core.ByteGrid
	palette Palette

	// playfield units per sample
	sx, sy float64
}

// NewCanvas allocates a canvas of w by h samples covering field.
func NewCanvas(w, h int, field core.Size) *Canvas {
	c := &Canvas{field: field}
	c.Resize(w, h)
	c.palette.Reset(color.RGBA{A: 255})
	return c
}

// Resize changes the sample resolution and clears the grid.
func (c *Canvas) Resize(w, h int) {
	c.grid = core.NewByteGrid(w, h)
	c.sx = float64(c.field.W) / float64(c.grid.W)
	c.sy = float64(c.field.H) / float64(c.grid.H)
}

// Grid exposes the palette-index raster.
func (c *Canvas) Grid() *core.ByteGrid { return c.grid }

// Palette exposes the palette used by the grid.
func (c *Canvas) Palette() *Palette { return &c.palette }

// Clear fills the canvas with bg.
func (c *Canvas) Clear(bg color.RGBA) {
	c.palette.Reset(bg)
	c.grid.Fill(0)
}

// ColorAt returns the color of sample (x, y).
func (c *Canvas) ColorAt(x, y int) color.RGBA {
	return c.palette.Color(c.grid.At(x, y))
}

// ToSample maps a playfield point to the sample containing it.
func (c *Canvas) ToSample(p geom.Vec2) (int, int) {
	return int(math.Floor(p.X / c.sx)), int(math.Floor(p.Y / c.sy))
}

// FromSample maps fractional sample coordinates back to playfield units.
func (c *Canvas) FromSample(x, y float64) geom.Vec2 {
	return geom.Vec2{X: x * c.sx, Y: y * c.sy}
}

// FillCircle paints every sample whose center lies inside the circle. The
// sample holding the circle's center is always painted so small circles stay
// visible at low resolution.
func (c *Canvas) FillCircle(center geom.Vec2, radius float64, col color.RGBA) {
	idx := c.palette.Index(col)
	x0 := int(math.Floor((center.X - radius) / c.sx))
	x1 := int(math.Ceil((center.X + radius) / c.sx))
	y0 := int(math.Floor((center.Y - radius) / c.sy))
	y1 := int(math.Ceil((center.Y + radius) / c.sy))
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		cy := (float64(y) + 0.5) * c.sy
		for x := x0; x <= x1; x++ {
			cx := (float64(x) + 0.5) * c.sx
			dx, dy := cx-center.X, cy-center.Y
			if dx*dx+dy*dy <= r2 {
				c.grid.Set(x, y, idx)
			}
		}
	}
	cx, cy := c.ToSample(center)
	c.grid.Set(cx, cy, idx)
}
