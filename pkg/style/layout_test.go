package style

import "testing"

func TestLayoutValid(t *testing.T) {
	tests := []struct {
		name   string
		layout LayoutConfig
		want   bool
	}{
		{name: "a4 preset", layout: A4(), want: true},
		{name: "letter preset", layout: Letter(), want: true},
		{name: "zero width", layout: LayoutConfig{Width: 0, Height: 100}, want: false},
		{name: "negative height", layout: LayoutConfig{Width: 100, Height: -1}, want: false},
		{
			name:   "padding over half width",
			layout: LayoutConfig{Width: 100, Height: 100, Padding: Padding{Left: 60}},
			want:   false,
		},
		{
			name:   "padding over half height",
			layout: LayoutConfig{Width: 100, Height: 100, Padding: Padding{Bottom: 51}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContentBox(t *testing.T) {
	l := LayoutConfig{
		Width:   1000,
		Height:  800,
		Padding: Padding{Top: 50, Right: 100, Bottom: 50, Left: 100},
	}
	if got := l.ContentWidth(); got != 800 {
		t.Errorf("ContentWidth() = %v, want 800", got)
	}
	if got := l.ContentHeight(); got != 700 {
		t.Errorf("ContentHeight() = %v, want 700", got)
	}
	if got := l.CenterX(); got != 500 {
		t.Errorf("CenterX() = %v, want 500", got)
	}
}

func TestPresetsShareBaseDPI(t *testing.T) {
	// Both page presets are sized for the same base resolution; the convert
	// stage depends on that to scale them uniformly.
	a4, letter := A4(), Letter()
	if a4.Fonts != letter.Fonts {
		t.Error("presets should share font tiers")
	}
	if a4.Width == letter.Width && a4.Height == letter.Height {
		t.Error("presets should differ in page size")
	}
}

func TestStylePresetsOpaque(t *testing.T) {
	for name, s := range map[string]StyleConfig{
		"classic": Classic(),
		"modern":  Modern(),
		"elegant": Elegant(),
	} {
		for field, c := range map[string]uint8{
			"background": s.BackgroundColor.A,
			"primary":    s.PrimaryTextColor.A,
			"border":     s.BorderColor.A,
			"accent":     s.AccentColor.A,
			"watermark":  s.WatermarkColor.A,
		} {
			if c != 0xFF {
				t.Errorf("%s: %s color must be opaque", name, field)
			}
		}
		if s.BorderWidth < 0 || s.CornerRadius < 0 {
			t.Errorf("%s: widths and radii must be non-negative", name)
		}
	}
}
