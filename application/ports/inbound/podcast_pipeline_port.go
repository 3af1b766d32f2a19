package inbound

import (
	"context"

	"github.com/JovialSquirrel/local-news-podcast/domain"
)

type GeneratePodcastParams struct {
	Location domain.Location
	Items    []domain.NewsItem
}

// PodcastPipelinePort turns a set of news items into an audio file on
// disk and returns its path.
type PodcastPipelinePort interface {
	Generate(ctx context.Context, params GeneratePodcastParams) (string, error)
}
