package config

import (
	"fmt"
	"os"
	"strconv"
)

type ServerConfig struct {
	Port           string
	City           string
	State          string
	CandidateLimit int
	DirectLimit    int
}

func GetServerConfig() (*ServerConfig, error) {
	city := os.Getenv("PODCAST_CITY")
	if city == "" {
		return nil, fmt.Errorf("PODCAST_CITY must be set")
	}

	candidateLimit, err := strconv.Atoi(getEnv("CANDIDATE_LIMIT", "20"))
	if err != nil {
		return nil, fmt.Errorf("parse CANDIDATE_LIMIT: %w", err)
	}
	directLimit, err := strconv.Atoi(getEnv("DIRECT_LIMIT", "5"))
	if err != nil {
		return nil, fmt.Errorf("parse DIRECT_LIMIT: %w", err)
	}

	return &ServerConfig{
		Port:           getEnv("PORT", "5000"),
		City:           city,
		State:          os.Getenv("PODCAST_STATE"),
		CandidateLimit: candidateLimit,
		DirectLimit:    directLimit,
	}, nil
}
