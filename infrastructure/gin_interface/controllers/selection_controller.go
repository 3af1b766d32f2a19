package controllers

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/inbound"
	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/domain"
	"github.com/JovialSquirrel/local-news-podcast/infrastructure/gin_interface/dto"
	"github.com/JovialSquirrel/local-news-podcast/middleware"
)

type SelectionController interface {
	SelectNews(c *gin.Context)
	GeneratePodcast(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type selectionController struct {
	logger         outbound.LoggerPort
	selection      inbound.NewsSelectionPort
	pipeline       inbound.PodcastPipelinePort
	sessions       middleware.SessionManager
	location       domain.Location
	candidateLimit int
}

func NewSelectionController(
	logger outbound.LoggerPort,
	selection inbound.NewsSelectionPort,
	pipeline inbound.PodcastPipelinePort,
	sessions middleware.SessionManager,
	location domain.Location,
	candidateLimit int,
) SelectionController {
	return &selectionController{
		logger:         logger,
		selection:      selection,
		pipeline:       pipeline,
		sessions:       sessions,
		location:       location,
		candidateLimit: candidateLimit,
	}
}

// SelectNews always fetches a fresh candidate list; nothing is cached
// across views except the stored set backing the rendered token.
func (s *selectionController) SelectNews(c *gin.Context) {
	set, err := s.selection.ListCandidates(c.Request.Context(), s.location, s.candidateLimit)
	if err != nil {
		s.logger.Error(err, "failed to list news candidates")
		c.String(http.StatusBadGateway, "We could not reach the news service. Please try again later.")
		return
	}

	c.HTML(http.StatusOK, "selection", gin.H{
		"Flash":    takeFlash(c),
		"Location": set.Location.Label(),
		"Token":    set.Token,
		"Items":    set.Items,
	})
}

func (s *selectionController) GeneratePodcast(c *gin.Context) {
	var form dto.SelectionForm
	if err := c.ShouldBind(&form); err != nil {
		setFlash(c, "Invalid selection, please pick again")
		c.Redirect(http.StatusFound, "/select-news")
		return
	}

	items, err := s.selection.ResolveSelection(c.Request.Context(), form.Token, form.Selected)
	if err != nil {
		var invalid *domain.InvalidSelectionError
		if errors.As(err, &invalid) {
			setFlash(c, invalid.Reason)
			c.Redirect(http.StatusFound, "/select-news")
			return
		}
		s.logger.Error(err, "failed to resolve selection")
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	audioPath, err := s.pipeline.Generate(c.Request.Context(), inbound.GeneratePodcastParams{
		Location: s.location,
		Items:    items,
	})
	if err != nil {
		s.logger.Error(err, "podcast generation failed")
		c.String(http.StatusInternalServerError, "Podcast generation failed. Please try again.")
		return
	}

	c.Header("Content-Type", "audio/mpeg")
	c.FileAttachment(audioPath, filepath.Base(audioPath))
}

func (s *selectionController) RegisterRoutes(g *gin.Engine) {
	guarded := g.Group("/", s.sessions.RequireSession())
	guarded.GET("/select-news", s.SelectNews)
	guarded.POST("/generate-podcast", s.GeneratePodcast)
}
