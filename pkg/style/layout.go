package style

// Padding is the inset box between the canvas edge and the content area.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// FontSizes holds the four type-size tiers used by the flow layout.
type FontSizes struct {
	Title float64 // certificate title line
	Name  float64 // recipient name
	Body  float64 // completion paragraph, institution line
	Small float64 // date, footer, certificate ID
}

// LayoutConfig describes the page geometry of a certificate. Dimensions are
// pixels at the 300 DPI base resolution; the pipeline's convert stage scales
// them for other target DPIs.
type LayoutConfig struct {
	Width  int
	Height int

	Padding      Padding
	HeaderHeight float64
	FooterHeight float64
	LogoSize     float64

	Fonts FontSizes
}

// BaseDPI is the resolution the layout presets are sized for.
const BaseDPI = 300

// A4 returns a landscape A4 page at the 300 DPI base resolution.
func A4() LayoutConfig {
	return LayoutConfig{
		Width:        3508,
		Height:       2480,
		Padding:      Padding{Top: 220, Right: 260, Bottom: 220, Left: 260},
		HeaderHeight: 360,
		FooterHeight: 320,
		LogoSize:     240,
		Fonts: FontSizes{
			Title: 150,
			Name:  190,
			Body:  80,
			Small: 56,
		},
	}
}

// Letter returns a landscape US Letter page at the 300 DPI base resolution.
func Letter() LayoutConfig {
	l := A4()
	l.Width = 3300
	l.Height = 2550
	return l
}

// ContentWidth returns the horizontal span of the padded content box.
func (l LayoutConfig) ContentWidth() float64 {
	return float64(l.Width) - l.Padding.Left - l.Padding.Right
}

// ContentHeight returns the vertical span of the padded content box.
func (l LayoutConfig) ContentHeight() float64 {
	return float64(l.Height) - l.Padding.Top - l.Padding.Bottom
}

// CenterX returns the horizontal center of the canvas.
func (l LayoutConfig) CenterX() float64 {
	return float64(l.Width) / 2
}

// Valid reports whether the layout satisfies its structural invariants:
// positive dimensions and padding no larger than half the page on each axis.
func (l LayoutConfig) Valid() bool {
	if l.Width <= 0 || l.Height <= 0 {
		return false
	}
	halfW := float64(l.Width) / 2
	halfH := float64(l.Height) / 2
	if l.Padding.Left > halfW || l.Padding.Right > halfW {
		return false
	}
	if l.Padding.Top > halfH || l.Padding.Bottom > halfH {
		return false
	}
	return true
}
