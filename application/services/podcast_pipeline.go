package services

import (
	"context"
	"errors"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/inbound"
	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/domain"
)

// Fixed scripts synthesized instead of a summary when the summarizer
// upstream misbehaves. The pipeline degrades to these rather than failing
// the whole request.
const (
	upstreamApologyScript = "Sorry, there was a problem reaching the news summary service. Please try again later."
	shapeApologyScript    = "Sorry, something went wrong while preparing your news summary. Please try again later."
)

type podcastPipeline struct {
	logger            outbound.LoggerPort
	scriptGenerator   outbound.ScriptGeneratorPort
	speechSynthesizer outbound.SpeechSynthesizerPort
}

func NewPodcastPipeline(
	logger outbound.LoggerPort,
	scriptGenerator outbound.ScriptGeneratorPort,
	speechSynthesizer outbound.SpeechSynthesizerPort,
) inbound.PodcastPipelinePort {
	return &podcastPipeline{
		logger:            logger,
		scriptGenerator:   scriptGenerator,
		speechSynthesizer: speechSynthesizer,
	}
}

func (p *podcastPipeline) Generate(ctx context.Context, params inbound.GeneratePodcastParams) (string, error) {
	stories := make([]string, 0, len(params.Items))
	for _, item := range params.Items {
		stories = append(stories, item.String())
	}

	script, err := p.scriptGenerator.Generate(ctx, outbound.GenerateScriptRequest{
		Stories:       stories,
		LocationLabel: params.Location.Label(),
	})
	if err != nil {
		script, err = p.fallbackScript(err)
		if err != nil {
			return "", err
		}
	}

	audioPath, err := p.speechSynthesizer.Synthesize(ctx, outbound.SynthesizeSpeechRequest{
		Script:        script,
		LocationLabel: params.Location.Label(),
	})
	if err != nil {
		p.logger.Error(err, "speech synthesis failed")
		return "", err
	}

	return audioPath, nil
}

// fallbackScript maps summarizer upstream failures to their apology
// scripts. Anything else, such as a missing API key, still aborts the
// pipeline.
func (p *podcastPipeline) fallbackScript(err error) (string, error) {
	var statusErr *domain.UpstreamStatusError
	if errors.As(err, &statusErr) {
		p.logger.ErrorWithFields(err, "summarizer upstream failed, using apology script", map[string]interface{}{
			"status": statusErr.Status,
		})
		return upstreamApologyScript, nil
	}

	var shapeErr *domain.UpstreamShapeError
	if errors.As(err, &shapeErr) {
		p.logger.Error(err, "summarizer response malformed, using apology script")
		return shapeApologyScript, nil
	}

	return "", err
}
