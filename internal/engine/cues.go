package engine

import "pixel_bistro/internal/models"

// CueSink receives feedback cues. Implementations must not block.
type CueSink interface {
	Play(cue models.Cue)
}

type nopSink struct{}

func (nopSink) Play(models.Cue) {}
