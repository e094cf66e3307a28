package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

// recordingHooks captures stage events for assertions.
type recordingHooks struct {
	mu     sync.Mutex
	stages []string
}

func (r *recordingHooks) OnGenerateStart(context.Context, string) {}
func (r *recordingHooks) OnGenerateComplete(context.Context, string, string, time.Duration, error) {
}
func (r *recordingHooks) OnStageStart(_ context.Context, stage string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages = append(r.stages, stage)
}
func (r *recordingHooks) OnStageComplete(context.Context, string, time.Duration, error) {}

func TestSetAndReset(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingHooks{}
	SetGenerationHooks(rec)

	Generation().OnStageStart(context.Background(), StageRender)
	Generation().OnStageStart(context.Background(), StagePersist)

	rec.mu.Lock()
	got := len(rec.stages)
	rec.mu.Unlock()
	if got != 2 {
		t.Errorf("recorded %d stages, want 2", got)
	}

	Reset()
	if _, ok := Generation().(NoopGenerationHooks); !ok {
		t.Error("Reset should restore the no-op hooks")
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingHooks{}
	SetGenerationHooks(rec)
	SetGenerationHooks(nil)

	if Generation() != GenerationHooks(rec) {
		t.Error("setting nil hooks should keep the current registration")
	}
}
