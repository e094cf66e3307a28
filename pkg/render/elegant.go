package render

import (
	"github.com/fogleman/gg"

	"github.com/mhartmer/certforge/pkg/style"
)

// flourishSize is the edge length of one corner flourish glyph.
const flourishSize = 180.0

// drawCornerFlourishes is the elegant variant's ornamentation pass. One base
// glyph is defined in the top-left corner's local coordinates and reused for
// all four corners by translating to each corner anchor and rotating in 90°
// steps. Each draw is wrapped in Push/Pop so the transform stack is balanced
// regardless of draw order.
func drawCornerFlourishes(dc *gg.Context, s style.StyleConfig, l style.LayoutConfig) {
	inset := s.BorderWidth + accentInset + 24
	w := float64(l.Width)
	h := float64(l.Height)

	corners := []struct {
		x, y, deg float64
	}{
		{inset, inset, 0},
		{w - inset, inset, 90},
		{w - inset, h - inset, 180},
		{inset, h - inset, 270},
	}

	for _, c := range corners {
		dc.Push()
		dc.Translate(c.x, c.y)
		dc.Rotate(gg.Radians(c.deg))
		drawFlourish(dc, s)
		dc.Pop()
	}
}

// drawFlourish paints the base glyph in local coordinates, with the corner
// anchor at the origin and the glyph extending toward positive x and y: a
// filled accent-tinted curve plus two stroked accent lines.
func drawFlourish(dc *gg.Context, s style.StyleConfig) {
	size := flourishSize
	ac := s.AccentColor

	// filled curve hugging the corner
	dc.SetRGBA255(int(ac.R), int(ac.G), int(ac.B), 90)
	dc.MoveTo(0, size)
	dc.QuadraticTo(0, 0, size, 0)
	dc.QuadraticTo(size*0.35, size*0.35, 0, size)
	dc.ClosePath()
	dc.Fill()

	// stroked lines echoing the curve
	dc.SetColor(s.AccentColor)
	dc.SetLineWidth(4)
	dc.MoveTo(0, size*1.25)
	dc.QuadraticTo(0, 0, size*1.25, 0)
	dc.Stroke()

	dc.SetLineWidth(2)
	dc.MoveTo(0, size*1.45)
	dc.QuadraticTo(0, 0, size*1.45, 0)
	dc.Stroke()
}
