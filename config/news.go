package config

import (
	"fmt"
	"os"
	"time"
)

type NewsConfig struct {
	ApiUrl  string
	ApiKey  string
	Timeout time.Duration
}

func GetNewsConfig() (*NewsConfig, error) {
	apiKey := os.Getenv("NEWSDATA_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("NEWSDATA_API_KEY must be set")
	}

	timeout, err := getDuration("NEWS_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	return &NewsConfig{
		ApiUrl:  getEnv("NEWSDATA_API_URL", "https://newsdata.io/api/1/news"),
		ApiKey:  apiKey,
		Timeout: timeout,
	}, nil
}
