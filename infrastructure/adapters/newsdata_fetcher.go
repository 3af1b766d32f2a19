package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/config"
	"github.com/JovialSquirrel/local-news-podcast/domain"
)

type newsdataResponse struct {
	Status  string            `json:"status"`
	Results []newsdataArticle `json:"results"`
}

type newsdataArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type newsdataFetcher struct {
	ContentFetcher
	newsConfig *config.NewsConfig
	logger     outbound.LoggerPort
}

func NewNewsdataFetcher(contentFetcher ContentFetcher, newsConfig *config.NewsConfig, logger outbound.LoggerPort) outbound.NewsFetcherPort {
	return &newsdataFetcher{
		ContentFetcher: contentFetcher,
		newsConfig:     newsConfig,
		logger:         logger,
	}
}

func (n *newsdataFetcher) Fetch(ctx context.Context, loc domain.Location, limit int) ([]domain.NewsItem, error) {
	if limit <= 0 {
		return []domain.NewsItem{}, nil
	}

	req, err := n.getRequest(ctx, loc.Query())
	if err != nil {
		n.logger.Error(err, "failed to build news request")
		return nil, err
	}

	n.logger.InfoWithFields("requesting news", map[string]interface{}{
		"query": loc.Query(),
	})

	payload, err := n.FetchContent(req, "newsdata")
	if err != nil {
		return nil, err
	}

	var res newsdataResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		n.logger.Error(err, "failed to decode news response")
		return nil, &domain.UpstreamShapeError{Upstream: "newsdata", Reason: "malformed JSON body"}
	}

	articles := res.Results
	if len(articles) > limit {
		articles = articles[:limit]
	}

	items := make([]domain.NewsItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, domain.ParseNewsItem(a.Title+". "+a.Description))
	}

	return items, nil
}

// getRequest sends the API key in a header, never in the query string, so
// a transport error's URL can be logged without exposing it.
func (n *newsdataFetcher) getRequest(ctx context.Context, query string) (*http.Request, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("country", "us")
	params.Set("language", "en")
	params.Set("category", "top")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.newsConfig.ApiUrl+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-ACCESS-KEY", n.newsConfig.ApiKey)

	return req, nil
}
