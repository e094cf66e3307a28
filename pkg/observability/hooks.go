// Package observability provides hooks for instrumenting the generation
// pipeline.
//
// The pipeline emits events for each stage it runs without depending on any
// observability backend. Hosts register hook implementations at startup to
// forward the events to whatever they use (OpenTelemetry, Prometheus, plain
// logs); libraries only ever call the registered hooks through this package.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerationHooks(&myHooks{})
//	    // ... run application
//	}
package observability

import (
	"context"
	"sync"
	"time"
)

// Stage names reported to generation hooks, in pipeline order.
const (
	StageValidate = "validate"
	StageMintID   = "mint_id"
	StageRender   = "render"
	StageSecure   = "secure"
	StageConvert  = "convert"
	StagePersist  = "persist"
	StageChecksum = "checksum"
	StageMetadata = "assemble_metadata"
)

// GenerationHooks receives events from the certificate generation pipeline.
type GenerationHooks interface {
	// OnGenerateStart records the start of one generation call.
	OnGenerateStart(ctx context.Context, template string)

	// OnGenerateComplete records the end of a generation call, including
	// the certificate ID (empty on failure) and total duration.
	OnGenerateComplete(ctx context.Context, template, certificateID string, duration time.Duration, err error)

	// OnStageStart records the start of one pipeline stage.
	OnStageStart(ctx context.Context, stage string)

	// OnStageComplete records the end of one pipeline stage.
	OnStageComplete(ctx context.Context, stage string, duration time.Duration, err error)
}

// NoopGenerationHooks is a no-op implementation of GenerationHooks.
type NoopGenerationHooks struct{}

func (NoopGenerationHooks) OnGenerateStart(context.Context, string) {}
func (NoopGenerationHooks) OnGenerateComplete(context.Context, string, string, time.Duration, error) {
}
func (NoopGenerationHooks) OnStageStart(context.Context, string)                          {}
func (NoopGenerationHooks) OnStageComplete(context.Context, string, time.Duration, error) {}

var (
	generationHooks GenerationHooks = NoopGenerationHooks{}
	hooksMu         sync.RWMutex
)

// SetGenerationHooks registers custom generation hooks.
// This should be called once at application startup, before any generation.
func SetGenerationHooks(h GenerationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generationHooks = h
	}
}

// Generation returns the registered generation hooks.
func Generation() GenerationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generationHooks
}

// Reset restores the no-op default hooks. Primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generationHooks = NoopGenerationHooks{}
}
