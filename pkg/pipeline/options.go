package pipeline

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mhartmer/certforge/pkg/errors"
)

// Default values shared by the CLI host and library callers.
const (
	DefaultDPI     = 300
	DefaultQuality = 90
	DefaultFormat  = FormatPNG

	MinDPI     = 72
	MaxDPI     = 600
	MinQuality = 1
	MaxQuality = 100
)

// Format constants for output encoding.
const (
	FormatJPG  = "jpg"
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJPG:  true,
	FormatJPEG: true,
	FormatPNG:  true,
}

// OutputConfig holds the export settings for a generator instance.
type OutputConfig struct {
	DPI            int    `json:"dpi" toml:"dpi"`
	Quality        int    `json:"quality" toml:"quality"`
	Format         string `json:"format" toml:"format"`
	PreserveAspect bool   `json:"preserve_aspect" toml:"preserve_aspect"`
	OutputDir      string `json:"output_dir,omitempty" toml:"output_dir"`
}

// SecurityConfig holds the tamper-evidence toggles. The secret key is opaque
// material mixed into the signature hash; its strength is never judged here.
type SecurityConfig struct {
	EnableWatermark        bool   `json:"enable_watermark" toml:"enable_watermark"`
	EnableDigitalSignature bool   `json:"enable_digital_signature" toml:"enable_digital_signature"`
	SecretKey              string `json:"-" toml:"secret_key"`
	EmbedMetadata          bool   `json:"embed_metadata" toml:"embed_metadata"`
	EnableQRCode           bool   `json:"enable_qr_code" toml:"enable_qr_code"`
}

// ValidateAndSetDefaults fills zero fields with defaults and checks the
// configured ranges. Invalid settings are a caller error, reported as a
// ValidationError with one entry per offending field. The method is
// idempotent.
func (o *OutputConfig) ValidateAndSetDefaults() error {
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Quality == 0 {
		o.Quality = DefaultQuality
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	o.Format = strings.ToLower(o.Format)

	fields := errors.FieldMap{}
	if o.DPI < MinDPI || o.DPI > MaxDPI {
		fields.Add("output.dpi", "must be between 72 and 600")
	}
	if o.Quality < MinQuality || o.Quality > MaxQuality {
		fields.Add("output.quality", "must be between 1 and 100")
	}
	if !ValidFormats[o.Format] {
		fields.Add("output.format", "must be one of: jpg, jpeg, png")
	}
	return fields.Err("invalid output configuration")
}

// discardLogger returns a logger that drops everything, used when the caller
// supplies none.
func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
