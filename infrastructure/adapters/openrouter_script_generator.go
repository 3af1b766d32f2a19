package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/config"
	"github.com/JovialSquirrel/local-news-podcast/domain"
)

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

type openRouterScriptGenerator struct {
	ContentFetcher
	llmConfig *config.LLMConfig
	logger    outbound.LoggerPort
}

func NewOpenRouterScriptGenerator(contentFetcher ContentFetcher, llmConfig *config.LLMConfig, logger outbound.LoggerPort) outbound.ScriptGeneratorPort {
	return &openRouterScriptGenerator{
		ContentFetcher: contentFetcher,
		llmConfig:      llmConfig,
		logger:         logger,
	}
}

func (g *openRouterScriptGenerator) Generate(ctx context.Context, req outbound.GenerateScriptRequest) (string, error) {
	if g.llmConfig.ApiKey == "" {
		return "", &domain.ConfigurationError{Name: "OPENROUTER_API_KEY"}
	}

	httpReq, err := g.getRequest(ctx, buildPrompt(req.Stories, req.LocationLabel))
	if err != nil {
		g.logger.Error(err, "failed to build completion request")
		return "", err
	}

	payload, err := g.FetchContent(httpReq, "openrouter")
	if err != nil {
		return "", err
	}

	var res chatResponse
	if err := json.Unmarshal(payload, &res); err != nil {
		g.logger.Error(err, "failed to decode completion response")
		return "", &domain.UpstreamShapeError{Upstream: "openrouter", Reason: "malformed JSON body"}
	}
	if len(res.Choices) == 0 {
		return "", &domain.UpstreamShapeError{Upstream: "openrouter", Reason: "no choices in response"}
	}

	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}

func (g *openRouterScriptGenerator) getRequest(ctx context.Context, prompt string) (*http.Request, error) {
	reqBody := chatRequest{
		Model: g.llmConfig.Model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.llmConfig.ApiUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+g.llmConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

func buildPrompt(stories []string, locationLabel string) string {
	var numbered strings.Builder
	for i, story := range stories {
		fmt.Fprintf(&numbered, "%d. %s\n", i+1, story)
	}

	return fmt.Sprintf(`You are a friendly podcast host. Using ONLY the news stories below, create a detailed 7-10 minute spoken script summarizing ALL the important local news for listeners in %s.

Make sure to cover EACH news story in the list clearly and completely. Do NOT skip any.

Do NOT include any commentary, analysis, or meta text, only the words to be said in the podcast.

Write in a casual, engaging tone, like you are speaking directly to listeners.

News stories:
%s
End the script naturally.`, locationLabel, numbered.String())
}
