package ports

import (
	"context"
)

// Episode is one recorded engine outcome sent to the learning
// collaborator. Reward is in [0,1]: drift verdicts push it low,
// stability pushes it high.
type Episode struct {
	SessionID string  `json:"session_id"`
	Task      string  `json:"task"`
	Reward    float64 `json:"reward"`
	Success   bool    `json:"success"`
	Critique  string  `json:"critique"`
}

// EpisodeSink receives engine outcomes. The engine assumes nothing about
// where episodes go: any conforming implementation works, including a
// no-op or in-memory mock. Implementations may block; callers needing a
// bound must impose their own timeout via ctx.
type EpisodeSink interface {
	StoreEpisode(ctx context.Context, episode Episode) (string, error)
}
