// Package pipeline implements the certificate generation pipeline.
//
// One [Generator.Generate] call runs a strictly sequential state machine:
//
//	Validate → MintID → Render → Secure → Convert → Persist → Checksum →
//	AssembleMetadata → Done
//
// No stage is re-entrant or skippable, and any stage failure aborts the
// remaining stages: callers must treat an error as "no usable artifact",
// though a partially-written file may remain on disk when Persist fails
// mid-write. Each call is self-contained with no shared mutable state, so
// separate calls may run concurrently; the only shared external resource is
// the output directory, where filename uniqueness (timestamp plus random
// ID token) prevents collisions.
package pipeline

import (
	"context"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mhartmer/certforge/pkg/errors"
	"github.com/mhartmer/certforge/pkg/model"
	"github.com/mhartmer/certforge/pkg/observability"
	"github.com/mhartmer/certforge/pkg/render"
)

// Request carries the per-call inputs for one generation.
type Request struct {
	Person      model.PersonRecord
	Achievement model.AchievementRecord

	// CertificateID overrides ID minting when non-empty. It is still
	// format-checked like a minted ID.
	CertificateID string

	// Filename overrides the generated artifact filename when non-empty.
	Filename string

	// Logo is drawn above the institution line when non-nil.
	Logo image.Image
}

// Generator runs the generation pipeline for one renderer and one pair of
// output/security configurations. It holds only immutable state and is safe
// for concurrent use.
type Generator struct {
	renderer *render.Renderer
	output   OutputConfig
	security SecurityConfig
	minter   IDMinter
	logger   *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithOutput sets the export configuration.
func WithOutput(o OutputConfig) Option {
	return func(g *Generator) { g.output = o }
}

// WithSecurity sets the tamper-evidence configuration.
func WithSecurity(s SecurityConfig) Option {
	return func(g *Generator) { g.security = s }
}

// WithMinter sets the ID minter, letting tests inject deterministic
// randomness.
func WithMinter(m IDMinter) Option {
	return func(g *Generator) { g.minter = m }
}

// WithLogger sets the logger for stage progress. Defaults to a discard
// logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a Generator for the given renderer. The output
// configuration is validated and defaulted; an invalid configuration is a
// caller error returned immediately rather than surfacing later mid-run.
func NewGenerator(r *render.Renderer, opts ...Option) (*Generator, error) {
	g := &Generator{
		renderer: r,
		logger:   discardLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.output.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return g, nil
}

// Generate runs the full pipeline for one request and returns the result
// record, or the first stage error. The error is always one of the two
// structured kinds from pkg/errors.
func (g *Generator) Generate(ctx context.Context, req Request) (result *Result, err error) {
	hooks := observability.Generation()
	start := time.Now()
	template := g.renderer.Name()
	hooks.OnGenerateStart(ctx, template)
	defer func() {
		id := ""
		if result != nil {
			id = result.CertificateID
		}
		hooks.OnGenerateComplete(ctx, template, id, time.Since(start), err)
	}()

	var stats Stats

	// Validate: authoritative field-level checks, independent of any
	// renderer pre-check, collecting every violation.
	if err := g.stage(ctx, observability.StageValidate, func() error {
		return model.ValidateRecords(req.Person, req.Achievement)
	}); err != nil {
		return nil, err
	}

	// MintID
	certificateID := req.CertificateID
	if err := g.stage(ctx, observability.StageMintID, func() error {
		if certificateID == "" {
			certificateID = g.minter.Mint(req.Person, req.Achievement)
		}
		return ValidateID(certificateID)
	}); err != nil {
		return nil, err
	}
	g.logger.Debugf("certificate ID %s", certificateID)

	// Render
	var raster image.Image
	renderStart := time.Now()
	if err := g.stage(ctx, observability.StageRender, func() error {
		renderer := g.renderer
		if g.security.EnableWatermark {
			renderer = renderer.WithWatermark()
		}
		raster = renderer.Render(req.Person, req.Achievement, certificateID, req.Logo)
		return nil
	}); err != nil {
		return nil, err
	}
	stats.RenderTime = time.Since(renderStart)

	// Secure
	var secured secureResult
	if err := g.stage(ctx, observability.StageSecure, func() error {
		secured = g.secure(raster, certificateID, req.Person, req.Achievement)
		return nil
	}); err != nil {
		return nil, err
	}

	// Convert
	var encoded []byte
	convertStart := time.Now()
	if err := g.stage(ctx, observability.StageConvert, func() error {
		var cerr error
		encoded, cerr = convert(secured.img, g.renderer.Layout(), g.output)
		return cerr
	}); err != nil {
		return nil, err
	}
	stats.ConvertTime = time.Since(convertStart)

	// Persist
	var path string
	persistStart := time.Now()
	if err := g.stage(ctx, observability.StagePersist, func() error {
		dir, derr := resolveOutputDir(g.output.OutputDir)
		if derr != nil {
			return derr
		}
		filename := buildFilename(req.Filename, certificateID, g.output.Format, time.Now())
		path, derr = persist(dir, filename, encoded)
		return derr
	}); err != nil {
		return nil, err
	}
	stats.PersistTime = time.Since(persistStart)

	// Checksum over the exact persisted bytes.
	var checksum string
	if err := g.stage(ctx, observability.StageChecksum, func() error {
		checksum = Checksum(encoded)
		return nil
	}); err != nil {
		return nil, err
	}

	// AssembleMetadata
	generatedAt := time.Now()
	var meta map[string]any
	if err := g.stage(ctx, observability.StageMetadata, func() error {
		meta = g.assembleMetadata(certificateID, req.Person, req.Achievement, secured.signature, generatedAt)
		return nil
	}); err != nil {
		return nil, err
	}

	stats.Total = time.Since(start)
	g.logger.Infof("generated %s (%d bytes, %s)", path, len(encoded), stats.Total.Round(time.Millisecond))

	return &Result{
		CertificateID: certificateID,
		FilePath:      path,
		FileSize:      int64(len(encoded)),
		GeneratedAt:   generatedAt,
		Checksum:      checksum,
		Metadata:      meta,
		Stats:         stats,
	}, nil
}

// stage runs one pipeline stage with hook events and error wrapping. Any
// error that is not already one of the two structured kinds is wrapped as a
// GenerationError so raw system errors never escape.
func (g *Generator) stage(ctx context.Context, name string, fn func() error) error {
	hooks := observability.Generation()
	hooks.OnStageStart(ctx, name)
	start := time.Now()
	err := fn()
	hooks.OnStageComplete(ctx, name, time.Since(start), err)
	if err != nil {
		g.logger.Errorf("stage %s failed: %v", name, err)
		return errors.WrapGeneration(err, "stage %s", name)
	}
	g.logger.Debugf("stage %s done (%s)", name, time.Since(start).Round(time.Microsecond))
	return nil
}
