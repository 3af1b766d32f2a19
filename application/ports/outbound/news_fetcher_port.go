package outbound

import (
	"context"

	"github.com/JovialSquirrel/local-news-podcast/domain"
)

// NewsFetcherPort returns at most limit headlines for a location, in
// upstream order. A zero-result lookup returns an empty slice and a nil
// error.
type NewsFetcherPort interface {
	Fetch(ctx context.Context, loc domain.Location, limit int) ([]domain.NewsItem, error)
}
