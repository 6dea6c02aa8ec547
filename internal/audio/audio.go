// Package audio plays kitchen feedback cues.
//
// There is no sound device behind the server build; cues are written to the
// log at debug level so clients and operators can follow them.
package audio

import (
	"sync/atomic"

	"pixel_bistro/internal/logger"
	"pixel_bistro/internal/models"
)

// Player is a muteable cue sink. Safe for concurrent use.
type Player struct {
	log    *logger.Logger
	muted  atomic.Bool
	played atomic.Int64
}

// NewPlayer returns an unmuted player logging to log.
func NewPlayer(log *logger.Logger) *Player {
	if log == nil {
		log = logger.Nop()
	}
	return &Player{log: log}
}

// Play emits the cue unless muted. Never blocks.
func (p *Player) Play(cue models.Cue) {
	if p.muted.Load() {
		return
	}
	p.played.Add(1)
	p.log.Debugw("cue", "sound", cue)
}

// ToggleMute flips the mute flag and returns the new value.
func (p *Player) ToggleMute() bool {
	for {
		cur := p.muted.Load()
		if p.muted.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// Muted reports the mute flag.
func (p *Player) Muted() bool { return p.muted.Load() }

// Played counts cues emitted while unmuted.
func (p *Player) Played() int64 { return p.played.Load() }
