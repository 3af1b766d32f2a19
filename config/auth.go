package config

import (
	"fmt"
	"os"
	"time"
)

type AuthConfig struct {
	Username      string
	Password      string
	SessionSecret string
	SessionTTL    time.Duration
}

func GetAuthConfig() (*AuthConfig, error) {
	username := os.Getenv("APP_USERNAME")
	if username == "" {
		return nil, fmt.Errorf("APP_USERNAME must be set")
	}
	password := os.Getenv("APP_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("APP_PASSWORD must be set")
	}
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET must be set")
	}

	sessionTTL, err := getDuration("SESSION_TTL", time.Hour)
	if err != nil {
		return nil, err
	}

	return &AuthConfig{
		Username:      username,
		Password:      password,
		SessionSecret: sessionSecret,
		SessionTTL:    sessionTTL,
	}, nil
}
