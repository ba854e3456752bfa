package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"driftwatch/ports"
)

// EpisodeSink is an in-memory ports.EpisodeSink for tests, demos and
// deployments without a learning collaborator.
type EpisodeSink struct {
	mu       sync.Mutex
	episodes []StoredEpisode
}

// StoredEpisode pairs an episode with its assigned id
type StoredEpisode struct {
	ID      string
	Episode ports.Episode
}

// NewEpisodeSink creates an empty in-memory sink
func NewEpisodeSink() *EpisodeSink {
	return &EpisodeSink{}
}

// StoreEpisode appends the episode and returns a fresh uuid
func (s *EpisodeSink) StoreEpisode(_ context.Context, episode ports.Episode) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.episodes = append(s.episodes, StoredEpisode{ID: id, Episode: episode})
	return id, nil
}

// Episodes returns a copy of everything stored so far
func (s *EpisodeSink) Episodes() []StoredEpisode {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]StoredEpisode, len(s.episodes))
	copy(out, s.episodes)
	return out
}

// Len returns the number of stored episodes
func (s *EpisodeSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.episodes)
}
