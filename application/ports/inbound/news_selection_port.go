package inbound

import (
	"context"

	"github.com/JovialSquirrel/local-news-podcast/domain"
)

// NewsSelectionPort drives the two-step selection flow: list candidates
// under a fresh token, then resolve a submitted selection against the
// stored set.
type NewsSelectionPort interface {
	ListCandidates(ctx context.Context, loc domain.Location, limit int) (*domain.CandidateSet, error)
	ResolveSelection(ctx context.Context, token string, indices []int) ([]domain.NewsItem, error)
}
