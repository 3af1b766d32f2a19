package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/inbound"
	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/config"
	"github.com/JovialSquirrel/local-news-podcast/domain"
	"github.com/JovialSquirrel/local-news-podcast/infrastructure/adapters"
	"github.com/JovialSquirrel/local-news-podcast/infrastructure/gin_interface/views"
	"github.com/JovialSquirrel/local-news-podcast/middleware"
)

type stubFetcher struct {
	items []domain.NewsItem
	err   error
}

func (s *stubFetcher) Fetch(context.Context, domain.Location, int) ([]domain.NewsItem, error) {
	return s.items, s.err
}

type stubPipeline struct {
	path string
	err  error
	got  inbound.GeneratePodcastParams
}

func (s *stubPipeline) Generate(_ context.Context, params inbound.GeneratePodcastParams) (string, error) {
	s.got = params
	return s.path, s.err
}

type recordingMailer struct {
	to   string
	path string
	err  error
}

func (m *recordingMailer) Send(_ context.Context, to string, audioPath string) error {
	m.to = to
	m.path = audioPath
	return m.err
}

func testSessionManager() middleware.SessionManager {
	return middleware.NewSessionManager(&config.AuthConfig{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}, adapters.NewZerologWrapper())
}

func newPodcastRouter(fetcher outbound.NewsFetcherPort, pipeline inbound.PodcastPipelinePort, mailer outbound.PodcastMailerPort, sessions middleware.SessionManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(views.Templates())
	NewPodcastController(adapters.NewZerologWrapper(), pipeline, fetcher, mailer, sessions, 5).RegisterRoutes(r)
	return r
}

func TestDirectGenerate_MissingParams(t *testing.T) {
	router := newPodcastRouter(&stubFetcher{}, &stubPipeline{}, &recordingMailer{}, testSessionManager())

	for _, target := range []string{"/generate", "/generate?city=Altoona", "/generate?email=a@b.com"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
	}
}

func TestDirectGenerate_NoNewsFound(t *testing.T) {
	router := newPodcastRouter(&stubFetcher{}, &stubPipeline{}, &recordingMailer{}, testSessionManager())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/generate?city=Nowhere&email=a@b.com", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No news found") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestDirectGenerate_UpstreamFailure(t *testing.T) {
	fetcher := &stubFetcher{err: &domain.UpstreamStatusError{Upstream: "newsdata", Status: 500}}
	router := newPodcastRouter(fetcher, &stubPipeline{}, &recordingMailer{}, testSessionManager())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/generate?city=Altoona&email=a@b.com", nil))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestDirectGenerate_StreamsAudioAndEmailsCopy(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "Altoona PA News Today.mp3")
	if err := os.WriteFile(audioPath, []byte("mp3 payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	fetcher := &stubFetcher{items: []domain.NewsItem{{Title: "one", Description: "a"}}}
	pipeline := &stubPipeline{path: audioPath}
	mailer := &recordingMailer{}
	router := newPodcastRouter(fetcher, pipeline, mailer, testSessionManager())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/generate?city=Altoona&state=PA&email=you@example.com", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("expected audio/mpeg, got %q", ct)
	}
	if w.Body.String() != "mp3 payload" {
		t.Errorf("unexpected body: %q", w.Body.String())
	}

	if mailer.to != "you@example.com" || mailer.path != audioPath {
		t.Errorf("mailer got to=%q path=%q", mailer.to, mailer.path)
	}
	if pipeline.got.Location.City != "Altoona" || pipeline.got.Location.State != "PA" {
		t.Errorf("pipeline got location %+v", pipeline.got.Location)
	}
}

func TestDirectGenerate_MailFailureIsServerError(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "out.mp3")
	if err := os.WriteFile(audioPath, []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}

	fetcher := &stubFetcher{items: []domain.NewsItem{{Title: "one"}}}
	mailer := &recordingMailer{err: domain.ErrDelivery}
	router := newPodcastRouter(fetcher, &stubPipeline{path: audioPath}, mailer, testSessionManager())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/generate?city=Altoona&email=a@b.com", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "test-secret") {
		t.Error("response leaked configuration detail")
	}
}

func TestHome_WithoutSessionServesForm(t *testing.T) {
	router := newPodcastRouter(&stubFetcher{}, &stubPipeline{}, &recordingMailer{}, testSessionManager())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `action="/generate"`) {
		t.Error("expected the direct-generate form")
	}
}

func TestHome_WithSessionRedirectsToSelection(t *testing.T) {
	sessions := testSessionManager()
	router := newPodcastRouter(&stubFetcher{}, &stubPipeline{}, &recordingMailer{}, sessions)

	token, err := sessions.Issue("listener")
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/select-news" {
		t.Errorf("expected redirect to /select-news, got %q", loc)
	}
}
