package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

func GetMailConfig() (*MailConfig, error) {
	username := os.Getenv("EMAIL_USER")
	if username == "" {
		return nil, fmt.Errorf("EMAIL_USER must be set")
	}
	password := os.Getenv("EMAIL_PASS")
	if password == "" {
		return nil, fmt.Errorf("EMAIL_PASS must be set")
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	if err != nil {
		return nil, fmt.Errorf("parse SMTP_PORT: %w", err)
	}

	timeout, err := getDuration("SMTP_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	return &MailConfig{
		Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     port,
		Username: username,
		Password: password,
		Timeout:  timeout,
	}, nil
}
