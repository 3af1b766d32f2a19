package outbound

import (
	"context"

	"github.com/JovialSquirrel/local-news-podcast/domain"
)

// CandidateStorePort keeps candidate sets between presenting them and
// processing the submission. Get returns domain.ErrCandidateSetExpired for
// unknown or expired tokens.
type CandidateStorePort interface {
	Save(ctx context.Context, set domain.CandidateSet) error
	Get(ctx context.Context, token string) (*domain.CandidateSet, error)
	Delete(ctx context.Context, token string) error
}
