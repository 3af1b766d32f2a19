package adapters

import (
	"context"
	"sync"
	"time"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/domain"
)

type MemoryCandidateStore struct {
	logger outbound.LoggerPort
	ttl    time.Duration

	stop     chan struct{}
	stopOnce sync.Once

	mu   sync.Mutex
	sets map[string]domain.CandidateSet
}

// NewMemoryCandidateStore keeps candidate sets in process memory and
// evicts expired ones from a sweep task running on the worker pool. Stop
// ends the sweep and returns its worker to the pool.
func NewMemoryCandidateStore(logger outbound.LoggerPort, ttl, sweepInterval time.Duration, dispatcher outbound.TaskDispatcher) (*MemoryCandidateStore, error) {
	s := &MemoryCandidateStore{
		logger: logger,
		ttl:    ttl,
		stop:   make(chan struct{}),
		sets:   make(map[string]domain.CandidateSet),
	}

	if err := dispatcher.Submit(func() {
		s.sweep(sweepInterval)
	}); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *MemoryCandidateStore) Save(_ context.Context, set domain.CandidateSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[set.Token] = set
	return nil
}

func (s *MemoryCandidateStore) Get(_ context.Context, token string) (*domain.CandidateSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.sets[token]
	if !ok {
		return nil, domain.ErrCandidateSetExpired
	}
	if time.Since(set.CreatedAt) > s.ttl {
		delete(s.sets, token)
		return nil, domain.ErrCandidateSetExpired
	}

	return &set, nil
}

func (s *MemoryCandidateStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, token)
	return nil
}

// Stop ends the janitor sweep. Safe to call more than once.
func (s *MemoryCandidateStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *MemoryCandidateStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictExpired()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryCandidateStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for token, set := range s.sets {
		if time.Since(set.CreatedAt) > s.ttl {
			delete(s.sets, token)
			evicted++
		}
	}
	if evicted > 0 {
		s.logger.InfoWithFields("evicted expired candidate sets", map[string]interface{}{
			"count": evicted,
		})
	}
}
