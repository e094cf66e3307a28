package render

import (
	"image"
	"testing"
	"time"

	"github.com/mhartmer/certforge/pkg/model"
	"github.com/mhartmer/certforge/pkg/style"
)

// testLayout is a scaled-down page so render tests stay fast.
func testLayout() style.LayoutConfig {
	return style.LayoutConfig{
		Width:        600,
		Height:       424,
		Padding:      style.Padding{Top: 40, Right: 48, Bottom: 40, Left: 48},
		HeaderHeight: 60,
		FooterHeight: 56,
		LogoSize:     40,
		Fonts:        style.FontSizes{Title: 26, Name: 32, Body: 14, Small: 10},
	}
}

func testPerson() model.PersonRecord {
	return model.PersonRecord{
		Name:           "Ada Lovelace",
		ID:             "STU-100",
		CompletionDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		Email:          "ada@example.com",
	}
}

func testAchievement() model.AchievementRecord {
	return model.AchievementRecord{
		Name:        "Intro to Computing",
		Duration:    "10 hours",
		Instructor:  "A. Turing",
		Institution: "Example University",
	}
}

func TestValidatePreCheck(t *testing.T) {
	r := NewStandard(style.Classic(), testLayout())

	if !r.Validate(testPerson(), testAchievement()) {
		t.Error("valid records should pass the pre-check")
	}

	tests := []struct {
		name   string
		mutate func(*model.PersonRecord, *model.AchievementRecord)
	}{
		{"blank person name", func(p *model.PersonRecord, a *model.AchievementRecord) { p.Name = "  " }},
		{"empty person id", func(p *model.PersonRecord, a *model.AchievementRecord) { p.ID = "" }},
		{"empty achievement name", func(p *model.PersonRecord, a *model.AchievementRecord) { a.Name = "" }},
		{"empty instructor", func(p *model.PersonRecord, a *model.AchievementRecord) { a.Instructor = "" }},
		{"empty institution", func(p *model.PersonRecord, a *model.AchievementRecord) { a.Institution = "" }},
		{"empty duration", func(p *model.PersonRecord, a *model.AchievementRecord) { a.Duration = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, a := testPerson(), testAchievement()
			tt.mutate(&p, &a)
			if r.Validate(p, a) {
				t.Error("pre-check should reject blank input")
			}
		})
	}
}

func TestRenderDimensions(t *testing.T) {
	l := testLayout()
	r := NewStandard(style.Classic(), l)
	img := r.Render(testPerson(), testAchievement(), "CERT-ABCDEF12-AABBCCDD", nil)

	b := img.Bounds()
	if b.Dx() != l.Width || b.Dy() != l.Height {
		t.Errorf("raster is %dx%d, want %dx%d", b.Dx(), b.Dy(), l.Width, l.Height)
	}
}

func TestElegantDiffersFromStandard(t *testing.T) {
	l := testLayout()
	s := style.Elegant()
	std := NewStandard(s, l).Render(testPerson(), testAchievement(), "CERT-ABCDEF12-AABBCCDD", nil)
	ele := NewElegant(s, l).Render(testPerson(), testAchievement(), "CERT-ABCDEF12-AABBCCDD", nil)

	if imagesEqual(std, ele) {
		t.Error("elegant ornamentation should change the raster")
	}
}

func TestRenderDeterministic(t *testing.T) {
	l := testLayout()
	r := NewElegant(style.Elegant(), l)
	a := r.Render(testPerson(), testAchievement(), "CERT-ABCDEF12-AABBCCDD", nil)
	b := r.Render(testPerson(), testAchievement(), "CERT-ABCDEF12-AABBCCDD", nil)

	if !imagesEqual(a, b) {
		t.Error("rendering the same input twice should be pixel-identical")
	}
}

func TestWithWatermark(t *testing.T) {
	s := style.Classic() // watermark off by default
	l := testLayout()
	r := NewStandard(s, l)

	plain := r.Render(testPerson(), testAchievement(), "CERT-ABCDEF12-AABBCCDD", nil)
	marked := r.WithWatermark().Render(testPerson(), testAchievement(), "CERT-ABCDEF12-AABBCCDD", nil)

	if imagesEqual(plain, marked) {
		t.Error("watermark should change the raster")
	}
	if r.Style().ShowWatermark {
		t.Error("WithWatermark must not mutate the original renderer")
	}

	// still identical when re-rendered without the watermark copy
	again := r.Render(testPerson(), testAchievement(), "CERT-ABCDEF12-AABBCCDD", nil)
	if !imagesEqual(plain, again) {
		t.Error("original renderer output changed after WithWatermark")
	}
}

func TestNewByName(t *testing.T) {
	l := testLayout()
	if got := New(TemplateElegant, style.Elegant(), l).Name(); got != TemplateElegant {
		t.Errorf("Name() = %q, want %q", got, TemplateElegant)
	}
	if got := New("unknown", style.Classic(), l).Name(); got != TemplateStandard {
		t.Errorf("unknown template should fall back to standard, got %q", got)
	}
}

func imagesEqual(a, b image.Image) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab != bb {
		return false
	}
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}
