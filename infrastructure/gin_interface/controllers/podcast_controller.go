package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/inbound"
	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/domain"
	"github.com/JovialSquirrel/local-news-podcast/infrastructure/gin_interface/dto"
	"github.com/JovialSquirrel/local-news-podcast/middleware"
)

type PodcastController interface {
	Home(c *gin.Context)
	DirectGenerate(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type podcastController struct {
	logger      outbound.LoggerPort
	pipeline    inbound.PodcastPipelinePort
	newsFetcher outbound.NewsFetcherPort
	mailer      outbound.PodcastMailerPort
	sessions    middleware.SessionManager
	directLimit int
}

func NewPodcastController(
	logger outbound.LoggerPort,
	pipeline inbound.PodcastPipelinePort,
	newsFetcher outbound.NewsFetcherPort,
	mailer outbound.PodcastMailerPort,
	sessions middleware.SessionManager,
	directLimit int,
) PodcastController {
	return &podcastController{
		logger:      logger,
		pipeline:    pipeline,
		newsFetcher: newsFetcher,
		mailer:      mailer,
		sessions:    sessions,
		directLimit: directLimit,
	}
}

func (p *podcastController) Home(c *gin.Context) {
	if _, ok := p.sessions.Username(c); ok {
		c.Redirect(http.StatusFound, "/select-news")
		return
	}
	c.HTML(http.StatusOK, "home", nil)
}

// DirectGenerate is the one-shot path: fetch, summarize, synthesize, email
// a copy, then stream the audio inline. It holds the request open for the
// whole pipeline.
func (p *podcastController) DirectGenerate(c *gin.Context) {
	var query dto.DirectGenerateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'city' or 'email'"})
		return
	}

	loc := domain.Location{City: query.City, State: query.State}

	items, err := p.newsFetcher.Fetch(c.Request.Context(), loc, p.directLimit)
	if err != nil {
		p.logger.Error(err, "news fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "News service unavailable"})
		return
	}
	if len(items) == 0 {
		p.logger.InfoWithFields(domain.ErrNoContent.Error(), map[string]interface{}{
			"query": loc.Query(),
		})
		c.JSON(http.StatusNotFound, gin.H{"error": "No news found"})
		return
	}

	audioPath, err := p.pipeline.Generate(c.Request.Context(), inbound.GeneratePodcastParams{
		Location: loc,
		Items:    items,
	})
	if err != nil {
		p.logger.Error(err, "podcast generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Podcast generation failed"})
		return
	}

	if err := p.mailer.Send(c.Request.Context(), query.Email, audioPath); err != nil {
		p.logger.Error(err, "podcast mail delivery failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Podcast email delivery failed"})
		return
	}

	c.Header("Content-Type", "audio/mpeg")
	c.File(audioPath)
}

func (p *podcastController) RegisterRoutes(g *gin.Engine) {
	g.GET("/", p.Home)
	g.GET("/generate", p.DirectGenerate)
}
