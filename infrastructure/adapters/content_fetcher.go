package adapters

import (
	"io"
	"net/http"
	"time"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/domain"
)

// ContentFetcher executes an upstream HTTP request and returns the body.
// Non-2xx responses come back as *domain.UpstreamStatusError.
type ContentFetcher interface {
	FetchContent(req *http.Request, upstream string) ([]byte, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort, timeout time.Duration) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request, upstream string) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "upstream request failed", map[string]interface{}{
			"upstream": upstream,
			"method":   req.Method,
		})
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			c.logger.Error(err, "failed to close upstream response body")
		}
	}()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		c.logger.ErrorWithFields(nil, "upstream returned non-2xx status", map[string]interface{}{
			"upstream": upstream,
			"status":   res.StatusCode,
			"body":     string(body),
		})
		return nil, &domain.UpstreamStatusError{Upstream: upstream, Status: res.StatusCode}
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "failed to read upstream response body", map[string]interface{}{
			"upstream": upstream,
		})
		return nil, err
	}

	return payload, nil
}
