package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/config"
)

type elevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// Filesystem-unsafe characters stripped from the location label before it
// becomes part of the output filename.
var unsafeFilenameChars = strings.NewReplacer(
	`\`, "", "/", "", "*", "", "?", "", ":", "", `"`, "", "<", "", ">", "", "|", "",
)

type elevenLabsSynthesizer struct {
	ContentFetcher
	ttsConfig *config.ElevenLabsConfig
	logger    outbound.LoggerPort
}

func NewElevenLabsSynthesizer(contentFetcher ContentFetcher, ttsConfig *config.ElevenLabsConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &elevenLabsSynthesizer{
		ContentFetcher: contentFetcher,
		ttsConfig:      ttsConfig,
		logger:         logger,
	}
}

// Synthesize renders the whole script in a single call and writes the audio
// into the working directory, overwriting any same-day file for the same
// location. Scripts longer than the engine's text limit are not chunked.
func (s *elevenLabsSynthesizer) Synthesize(ctx context.Context, req outbound.SynthesizeSpeechRequest) (string, error) {
	filename := audioFileName(req.LocationLabel, time.Now())

	httpReq, err := s.getRequest(ctx, req.Script)
	if err != nil {
		s.logger.Error(err, "failed to build speech request")
		return "", err
	}

	audio, err := s.FetchContent(httpReq, "elevenlabs")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filename, audio, 0o644); err != nil {
		s.logger.ErrorWithFields(err, "failed to write audio file", map[string]interface{}{
			"filename": filename,
		})
		return "", err
	}

	s.logger.InfoWithFields("audio file written", map[string]interface{}{
		"filename": filename,
		"bytes":    len(audio),
	})

	return filename, nil
}

func (s *elevenLabsSynthesizer) getRequest(ctx context.Context, script string) (*http.Request, error) {
	reqBody := elevenLabsRequest{
		Text:    script,
		ModelId: s.ttsConfig.ModelId,
		VoiceSettings: voiceSettings{
			Stability:       s.ttsConfig.Stability,
			SimilarityBoost: s.ttsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.ttsConfig.ApiUrl+"/"+s.ttsConfig.VoiceID, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", s.ttsConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

func audioFileName(locationLabel string, now time.Time) string {
	return fmt.Sprintf("%s News %s.mp3", unsafeFilenameChars.Replace(locationLabel), now.Format("Monday, January 02"))
}
