package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type ElevenLabsConfig struct {
	ApiUrl          string
	ApiKey          string
	VoiceID         string
	ModelId         string
	Stability       float64
	SimilarityBoost float64
	Timeout         time.Duration
}

// GetElevenLabsConfig fails when the API key is absent. It is called at
// process start, so a missing key stops the service before it accepts
// requests.
func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiKey := os.Getenv("ELEVENLABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY must be set")
	}

	stability, err := parseVoiceSetting("ELEVENLABS_STABILITY", 0.5)
	if err != nil {
		return nil, err
	}
	similarityBoost, err := parseVoiceSetting("ELEVENLABS_SIMILARITY_BOOST", 0.75)
	if err != nil {
		return nil, err
	}

	timeout, err := getDuration("TTS_TIMEOUT", 2*time.Minute)
	if err != nil {
		return nil, err
	}

	return &ElevenLabsConfig{
		ApiUrl:          getEnv("ELEVENLABS_API_URL", "https://api.elevenlabs.io/v1/text-to-speech"),
		ApiKey:          apiKey,
		VoiceID:         getEnv("ELEVENLABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM"),
		ModelId:         getEnv("ELEVENLABS_MODEL_ID", "eleven_monolingual_v1"),
		Stability:       stability,
		SimilarityBoost: similarityBoost,
		Timeout:         timeout,
	}, nil
}

func parseVoiceSetting(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return parsed, nil
}
