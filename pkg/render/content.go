package render

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/mhartmer/certforge/pkg/model"
)

// titleText is the fixed heading above the recipient name.
const titleText = "Certificate of Achievement"

// drawContent flows the content blocks top-down through the padded content
// box. The block order is fixed: logo (when supplied), institution, title,
// name with underline, completion paragraph, date. The footer is drawn last,
// pinned to the bottom band.
func (r *Renderer) drawContent(dc *gg.Context, p model.PersonRecord, a model.AchievementRecord, certificateID string, logo image.Image) {
	l := r.layout
	centerX := l.CenterX()
	maxWidth := l.ContentWidth()
	cursor := l.Padding.Top

	if logo != nil {
		cursor += r.drawLogo(dc, logo, centerX, cursor) + blockGap
	}

	cursor += textBlock(dc, strings.ToUpper(a.Institution), r.bodyFace(), r.style.SecondaryTextColor, centerX, cursor, maxWidth) + blockGap
	// the title never starts above the header band, even without a logo
	cursor = math.Max(cursor, l.Padding.Top+l.HeaderHeight)
	cursor += textBlock(dc, titleText, r.titleFace(), r.style.PrimaryTextColor, centerX, cursor, maxWidth) + blockGap*2

	cursor += r.drawName(dc, p.Name, centerX, cursor, maxWidth) + blockGap*2

	cursor += textBlock(dc, completionText(a), r.bodyFace(), r.style.PrimaryTextColor, centerX, cursor, maxWidth*0.8) + blockGap

	dateLine := "Completed on " + p.CompletionDate.Format("January 2, 2006")
	textBlock(dc, dateLine, r.smallFace(), r.style.SecondaryTextColor, centerX, cursor, maxWidth)

	r.drawFooter(dc, a, certificateID)
}

// drawLogo paints the logo centered at the cursor, scaled to fit the
// configured logo box, and returns the drawn height.
func (r *Renderer) drawLogo(dc *gg.Context, logo image.Image, centerX, y float64) float64 {
	size := int(r.layout.LogoSize)
	fitted := imaging.Fit(logo, size, size, imaging.Lanczos)
	b := fitted.Bounds()
	dc.DrawImage(fitted, int(centerX)-b.Dx()/2, int(y))
	return float64(b.Dy())
}

// drawName paints the recipient name with an accent underline sized to the
// measured text width, and returns the combined height.
func (r *Renderer) drawName(dc *gg.Context, name string, centerX, y, maxWidth float64) float64 {
	face := r.nameFace()
	w, _ := measureText(dc, name, face, maxWidth)
	h := textBlock(dc, name, face, r.style.PrimaryTextColor, centerX, y, maxWidth)

	underlineW := w + 80
	underlineY := y + h + 12
	dc.SetColor(r.style.AccentColor)
	dc.SetLineWidth(5)
	dc.DrawLine(centerX-underlineW/2, underlineY, centerX+underlineW/2, underlineY)
	dc.Stroke()

	return h + 12 + 5
}

// completionText builds the body paragraph from the achievement record.
func completionText(a model.AchievementRecord) string {
	text := fmt.Sprintf("has successfully completed %s (%s)", a.Name, a.Duration)
	if strings.TrimSpace(a.Description) != "" {
		text += ". " + strings.TrimSpace(a.Description)
	}
	return text
}

// drawFooter paints the signature block (left-aligned) and the certificate
// ID inside the bottom band. Unlike the flowed blocks it anchors to the
// band, not to the content cursor.
func (r *Renderer) drawFooter(dc *gg.Context, a model.AchievementRecord, certificateID string) {
	l := r.layout
	bandTop := float64(l.Height) - l.Padding.Bottom - l.FooterHeight

	sigX := l.Padding.Left
	sigW := l.ContentWidth() * 0.25
	sigY := bandTop + l.FooterHeight*0.4

	dc.SetColor(r.style.SecondaryTextColor)
	dc.SetLineWidth(3)
	dc.DrawLine(sigX, sigY, sigX+sigW, sigY)
	dc.Stroke()

	dc.SetFontFace(r.smallFace())
	dc.SetColor(r.style.PrimaryTextColor)
	dc.DrawStringAnchored(a.Instructor, sigX, sigY+l.Fonts.Small*1.2, 0, 0.5)
	dc.SetColor(r.style.SecondaryTextColor)
	dc.DrawStringAnchored("Instructor", sigX, sigY+l.Fonts.Small*2.4, 0, 0.5)

	idText := "Certificate ID: " + certificateID
	dc.DrawStringAnchored(idText, float64(l.Width)-l.Padding.Right, sigY+l.Fonts.Small*1.2, 1, 0.5)
}
