package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/inbound"
	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/domain"
)

type newsSelection struct {
	logger         outbound.LoggerPort
	newsFetcher    outbound.NewsFetcherPort
	candidateStore outbound.CandidateStorePort
}

func NewNewsSelection(
	logger outbound.LoggerPort,
	newsFetcher outbound.NewsFetcherPort,
	candidateStore outbound.CandidateStorePort,
) inbound.NewsSelectionPort {
	return &newsSelection{
		logger:         logger,
		newsFetcher:    newsFetcher,
		candidateStore: candidateStore,
	}
}

// ListCandidates fetches a fresh candidate list and stores it under a new
// token so the later submission resolves against exactly the list the user
// saw, not a second upstream query. An empty list is returned without a
// token and without being stored.
func (s *newsSelection) ListCandidates(ctx context.Context, loc domain.Location, limit int) (*domain.CandidateSet, error) {
	items, err := s.newsFetcher.Fetch(ctx, loc, limit)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return &domain.CandidateSet{Location: loc}, nil
	}

	set := domain.CandidateSet{
		Token:     uuid.NewString(),
		Location:  loc,
		Items:     items,
		CreatedAt: time.Now(),
	}
	if err := s.candidateStore.Save(ctx, set); err != nil {
		s.logger.Error(err, "failed to store candidate set")
		return nil, err
	}

	return &set, nil
}

// ResolveSelection is one-shot: a successfully resolved token is removed
// from the store, so resubmitting the same form starts over.
func (s *newsSelection) ResolveSelection(ctx context.Context, token string, indices []int) ([]domain.NewsItem, error) {
	if len(indices) == 0 {
		return nil, &domain.InvalidSelectionError{Reason: "select at least one story"}
	}
	if token == "" {
		return nil, &domain.InvalidSelectionError{Reason: "missing selection token"}
	}

	set, err := s.candidateStore.Get(ctx, token)
	if errors.Is(err, domain.ErrCandidateSetExpired) {
		return nil, &domain.InvalidSelectionError{Reason: "your story list expired, please pick again"}
	}
	if err != nil {
		return nil, err
	}

	selected, err := set.Select(indices)
	if err != nil {
		return nil, err
	}

	if err := s.candidateStore.Delete(ctx, token); err != nil {
		s.logger.Error(err, "failed to delete resolved candidate set")
	}

	return selected, nil
}
