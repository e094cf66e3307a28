package render

import (
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/mhartmer/certforge/pkg/fonts"
)

// blockGap is the fixed vertical gap inserted between flowed text blocks.
const blockGap = 40.0

// textBlock measures and paints a single styled text run centered at centerX
// with its top edge at y, wrapping to maxWidth. It returns the drawn height
// so the caller can advance the flow cursor.
func textBlock(dc *gg.Context, text string, face font.Face, col color.Color, centerX, y, maxWidth float64) float64 {
	dc.SetFontFace(face)
	dc.SetColor(col)

	lines := dc.WordWrap(text, maxWidth)
	_, lineH := dc.MeasureString("Mg")
	lineSpacing := lineH * 1.3

	for i, line := range lines {
		// anchored at the horizontal center, baseline adjusted so the
		// first line's top sits at y
		dc.DrawStringAnchored(line, centerX, y+float64(i)*lineSpacing+lineH/2, 0.5, 0.5)
	}
	return float64(len(lines)) * lineSpacing
}

// measureText returns the wrapped size of text without painting it.
func measureText(dc *gg.Context, text string, face font.Face, maxWidth float64) (w, h float64) {
	dc.SetFontFace(face)
	lines := dc.WordWrap(text, maxWidth)
	_, lineH := dc.MeasureString("Mg")
	for _, line := range lines {
		lw, _ := dc.MeasureString(line)
		if lw > w {
			w = lw
		}
	}
	return w, float64(len(lines)) * lineH * 1.3
}

// drawBackground fills the canvas with either a vertical two-stop gradient
// or a flat fill, then optionally paints a soft shadow rectangle inset from
// the edge by borderWidth+4.
func (r *Renderer) drawBackground(dc *gg.Context) {
	w := float64(r.layout.Width)
	h := float64(r.layout.Height)

	if r.style.UseGradient {
		grad := gg.NewLinearGradient(0, 0, 0, h)
		grad.AddColorStop(0, r.style.GradientStart)
		grad.AddColorStop(1, r.style.GradientEnd)
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	} else {
		dc.SetColor(r.style.BackgroundColor)
		dc.Clear()
	}

	if r.style.DropShadow {
		r.drawShadow(dc)
	}
}

// drawShadow approximates a blurred drop shadow by layering widening
// low-alpha strokes around a rectangle inset by borderWidth+4.
func (r *Renderer) drawShadow(dc *gg.Context) {
	inset := r.style.BorderWidth + 4
	w := float64(r.layout.Width)
	h := float64(r.layout.Height)
	sc := r.style.ShadowColor

	const passes = 6
	for i := 1; i <= passes; i++ {
		alpha := 14 - 2*i // fade outwards
		if alpha <= 0 {
			break
		}
		dc.SetRGBA255(int(sc.R), int(sc.G), int(sc.B), alpha)
		dc.SetLineWidth(float64(i) * 2)
		off := inset - float64(i)
		dc.DrawRoundedRectangle(off, off, w-2*off, h-2*off, r.style.CornerRadius)
		dc.Stroke()
	}
}

// accentInset is the fixed margin between the main border and the thinner
// accent border.
const accentInset = 28.0

// drawBorder strokes the main rounded border at the configured width plus a
// thinner accent rectangle inset by a fixed margin. Both are drawn for every
// template variant.
func (r *Renderer) drawBorder(dc *gg.Context) {
	w := float64(r.layout.Width)
	h := float64(r.layout.Height)
	bw := r.style.BorderWidth

	dc.SetColor(r.style.BorderColor)
	dc.SetLineWidth(bw)
	dc.DrawRoundedRectangle(bw, bw, w-2*bw, h-2*bw, r.style.CornerRadius)
	dc.Stroke()

	inner := bw + accentInset
	dc.SetColor(r.style.AccentColor)
	dc.SetLineWidth(bw / 4)
	dc.DrawRoundedRectangle(inner, inner, w-2*inner, h-2*inner, r.style.CornerRadius*0.75)
	dc.Stroke()
}

// watermarkAngle is the diagonal tilt of the watermark text in degrees.
const watermarkAngle = -17.0

// drawWatermark paints a large letter-spaced label rotated about the canvas
// center in a near-transparent tint, so it reads as background texture.
func (r *Renderer) drawWatermark(dc *gg.Context) {
	text := r.style.WatermarkText
	if text == "" {
		return
	}
	w := float64(r.layout.Width)
	h := float64(r.layout.Height)
	size := h / 6
	spacing := size * 0.35

	face := fonts.Face(r.style.TitleFontFamily, fonts.Bold, size)
	dc.SetFontFace(face)
	wc := r.style.WatermarkColor
	dc.SetRGBA255(int(wc.R), int(wc.G), int(wc.B), 18)

	// total advance including inter-letter spacing, for centering
	total := -spacing
	for _, ch := range text {
		cw, _ := dc.MeasureString(string(ch))
		total += cw + spacing
	}

	dc.Push()
	dc.RotateAbout(gg.Radians(watermarkAngle), w/2, h/2)
	x := w/2 - total/2
	for _, ch := range text {
		s := string(ch)
		cw, _ := dc.MeasureString(s)
		dc.DrawStringAnchored(s, x+cw/2, h/2, 0.5, 0.5)
		x += cw + spacing
	}
	dc.Pop()
}
