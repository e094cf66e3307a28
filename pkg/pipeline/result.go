package pipeline

import (
	"time"

	"github.com/mhartmer/certforge/pkg/buildinfo"
	"github.com/mhartmer/certforge/pkg/model"
)

// Result is the receipt for one successful generation. It is created once
// per pipeline run and read-only thereafter.
type Result struct {
	CertificateID string         `json:"certificate_id"`
	FilePath      string         `json:"file_path"`
	FileSize      int64          `json:"file_size_bytes"`
	GeneratedAt   time.Time      `json:"generated_at"`
	Checksum      string         `json:"checksum"`
	Metadata      map[string]any `json:"metadata"`
	Stats         Stats          `json:"-"`
}

// Stats contains pipeline timing information for one run.
type Stats struct {
	RenderTime  time.Duration
	ConvertTime time.Duration
	PersistTime time.Duration
	Total       time.Duration
}

// assembleMetadata builds the descriptive mapping bundled into the Result.
func (g *Generator) assembleMetadata(certificateID string, p model.PersonRecord, a model.AchievementRecord, signature string, generatedAt time.Time) map[string]any {
	meta := map[string]any{
		"certificate_id": certificateID,
		"template":       g.renderer.Name(),
		"person":         p.ToMap(),
		"achievement":    a.ToMap(),
		"output": map[string]any{
			"dpi":     g.output.DPI,
			"quality": g.output.Quality,
			"format":  g.output.Format,
		},
		"security": map[string]bool{
			"watermark":         g.security.EnableWatermark,
			"digital_signature": g.security.EnableDigitalSignature,
			"embed_metadata":    g.security.EmbedMetadata,
			"qr_code":           g.security.EnableQRCode,
		},
		"generator_version": buildinfo.Version,
		"generated_at":      generatedAt.Format(time.RFC3339),
	}
	if signature != "" {
		meta["signature"] = signature
	}
	return meta
}
