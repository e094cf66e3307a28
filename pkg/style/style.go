// Package style defines the visual theme and page geometry value objects
// consumed by the certificate renderer.
//
// StyleConfig and LayoutConfig are pure data: immutable once constructed and
// safe to share read-only across concurrent generation calls. Presets cover
// the common cases; callers copy a preset and override fields as needed.
package style

import "image/color"

// StyleConfig describes the visual theme of a certificate template.
// All colors are opaque RGBA values; transparency for overlays such as the
// watermark is applied by the renderer, not stored here.
type StyleConfig struct {
	BackgroundColor    color.RGBA
	PrimaryTextColor   color.RGBA
	SecondaryTextColor color.RGBA
	BorderColor        color.RGBA
	AccentColor        color.RGBA
	GradientStart      color.RGBA
	GradientEnd        color.RGBA
	WatermarkColor     color.RGBA

	TitleFontFamily string
	BodyFontFamily  string

	BorderWidth  float64
	CornerRadius float64

	UseGradient   bool
	ShowWatermark bool
	WatermarkText string
	DropShadow    bool
	ShadowColor   color.RGBA
}

// Classic is a conservative serif-toned theme on warm paper.
func Classic() StyleConfig {
	return StyleConfig{
		BackgroundColor:    color.RGBA{R: 0xFD, G: 0xFB, B: 0xF5, A: 0xFF},
		PrimaryTextColor:   color.RGBA{R: 0x2B, G: 0x2B, B: 0x2B, A: 0xFF},
		SecondaryTextColor: color.RGBA{R: 0x5A, G: 0x5A, B: 0x5A, A: 0xFF},
		BorderColor:        color.RGBA{R: 0x1F, G: 0x3A, B: 0x5F, A: 0xFF},
		AccentColor:        color.RGBA{R: 0xB8, G: 0x86, B: 0x2D, A: 0xFF},
		GradientStart:      color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		GradientEnd:        color.RGBA{R: 0xF2, G: 0xEC, B: 0xDC, A: 0xFF},
		WatermarkColor:     color.RGBA{R: 0x1F, G: 0x3A, B: 0x5F, A: 0xFF},
		TitleFontFamily:    "Georgia",
		BodyFontFamily:     "Georgia",
		BorderWidth:        12,
		CornerRadius:       24,
		UseGradient:        true,
		WatermarkText:      "CERTIFIED",
		ShadowColor:        color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
	}
}

// Modern is a flat, high-contrast theme with a cool accent.
func Modern() StyleConfig {
	s := Classic()
	s.BackgroundColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	s.BorderColor = color.RGBA{R: 0x13, G: 0x2F, B: 0x4A, A: 0xFF}
	s.AccentColor = color.RGBA{R: 0x0E, G: 0x7C, B: 0x7B, A: 0xFF}
	s.TitleFontFamily = "Helvetica"
	s.BodyFontFamily = "Helvetica"
	s.UseGradient = false
	s.CornerRadius = 8
	return s
}

// Elegant is the ornamented theme used with the elegant template variant.
func Elegant() StyleConfig {
	s := Classic()
	s.AccentColor = color.RGBA{R: 0x8A, G: 0x6D, B: 0x1F, A: 0xFF}
	s.GradientEnd = color.RGBA{R: 0xEF, G: 0xE6, B: 0xCE, A: 0xFF}
	s.BorderWidth = 16
	s.CornerRadius = 32
	s.DropShadow = true
	return s
}
