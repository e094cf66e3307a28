// Package render implements the certificate template renderer.
//
// A [Renderer] lays out and draws one certificate onto a raster canvas using
// a fixed top-down vertical flow: a cursor starts at the top of the padded
// content box and each block (institution line, title, recipient name with
// underline, completion paragraph, date) is measured, painted centered at
// the cursor, and advances the cursor by its height plus a gap. The footer
// (signature block and certificate ID) is pinned to the bottom band instead
// of flowing from the cursor.
//
// Template variants share the same drawing helpers; the elegant variant is
// the standard pipeline plus one extra ornamentation pass held as an
// optional strategy, not a subtype.
package render

import (
	"image"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/mhartmer/certforge/pkg/fonts"
	"github.com/mhartmer/certforge/pkg/model"
	"github.com/mhartmer/certforge/pkg/style"
)

// Template variant names.
const (
	TemplateStandard = "standard"
	TemplateElegant  = "elegant"
)

// OrnamentFunc draws extra decoration after the border pass. The context's
// transform stack is balanced on entry and must be balanced on return.
type OrnamentFunc func(dc *gg.Context, s style.StyleConfig, l style.LayoutConfig)

// Renderer draws certificates for one style/layout pair. It holds only
// immutable configuration and is safe for concurrent use.
type Renderer struct {
	name      string
	style     style.StyleConfig
	layout    style.LayoutConfig
	ornaments OrnamentFunc // nil for the standard variant
}

// NewStandard creates the standard template renderer.
func NewStandard(s style.StyleConfig, l style.LayoutConfig) *Renderer {
	return &Renderer{name: TemplateStandard, style: s, layout: l}
}

// NewElegant creates the elegant template renderer: the standard pipeline
// plus a corner-flourish ornamentation pass.
func NewElegant(s style.StyleConfig, l style.LayoutConfig) *Renderer {
	return &Renderer{name: TemplateElegant, style: s, layout: l, ornaments: drawCornerFlourishes}
}

// New creates a renderer by template name, defaulting to the standard
// variant for unknown names.
func New(template string, s style.StyleConfig, l style.LayoutConfig) *Renderer {
	if template == TemplateElegant {
		return NewElegant(s, l)
	}
	return NewStandard(s, l)
}

// Name returns the template variant name.
func (r *Renderer) Name() string { return r.name }

// WithWatermark returns a copy of the renderer with the watermark enabled,
// keeping the original untouched so shared renderers stay immutable.
func (r *Renderer) WithWatermark() *Renderer {
	c := *r
	c.style.ShowWatermark = true
	return &c
}

// Style returns the renderer's style configuration.
func (r *Renderer) Style() style.StyleConfig { return r.style }

// Layout returns the renderer's layout configuration.
func (r *Renderer) Layout() style.LayoutConfig { return r.layout }

// Validate is a cheap non-blank pre-check on the records. The pipeline's own
// validation is authoritative and stricter; this exists so hosts driving the
// renderer directly can reject obviously empty input early.
func (r *Renderer) Validate(p model.PersonRecord, a model.AchievementRecord) bool {
	for _, s := range []string{p.Name, p.ID, a.Name, a.Instructor, a.Institution, a.Duration} {
		if strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}

// Render draws the certificate and returns the raw raster at the layout's
// base resolution. Inputs are assumed to have passed validation; Render
// itself performs layout and paint only and does not fail.
func (r *Renderer) Render(p model.PersonRecord, a model.AchievementRecord, certificateID string, logo image.Image) image.Image {
	dc := gg.NewContext(r.layout.Width, r.layout.Height)

	r.drawBackground(dc)
	r.drawBorder(dc)
	if r.ornaments != nil {
		r.ornaments(dc, r.style, r.layout)
	}
	if r.style.ShowWatermark {
		r.drawWatermark(dc)
	}
	r.drawContent(dc, p, a, certificateID, logo)

	return dc.Image()
}

// Faces are built per render call so concurrent renders never share the
// mutable glyph cache inside a truetype face.

func (r *Renderer) titleFace() font.Face {
	return fonts.Face(r.style.TitleFontFamily, fonts.Bold, r.layout.Fonts.Title)
}

func (r *Renderer) nameFace() font.Face {
	return fonts.Face(r.style.TitleFontFamily, fonts.Bold, r.layout.Fonts.Name)
}

func (r *Renderer) bodyFace() font.Face {
	return fonts.Face(r.style.BodyFontFamily, fonts.Regular, r.layout.Fonts.Body)
}

func (r *Renderer) smallFace() font.Face {
	return fonts.Face(r.style.BodyFontFamily, fonts.Regular, r.layout.Fonts.Small)
}
