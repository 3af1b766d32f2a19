package config

import (
	"fmt"
	"strconv"
	"time"
)

const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
	StoreBackendDynamo = "dynamo"
)

type StoreConfig struct {
	Backend       string
	TTL           time.Duration
	SweepInterval time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DynamoTable   string
}

func GetStoreConfig() (*StoreConfig, error) {
	backend := getEnv("CANDIDATE_STORE", StoreBackendMemory)
	switch backend {
	case StoreBackendMemory, StoreBackendRedis, StoreBackendDynamo:
	default:
		return nil, fmt.Errorf("unknown CANDIDATE_STORE backend %q", backend)
	}

	ttl, err := getDuration("CANDIDATE_TTL", 15*time.Minute)
	if err != nil {
		return nil, err
	}
	sweepInterval, err := getDuration("CANDIDATE_SWEEP_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_DB: %w", err)
	}

	cfg := &StoreConfig{
		Backend:       backend,
		TTL:           ttl,
		SweepInterval: sweepInterval,
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		DynamoTable:   getEnv("DYNAMO_CANDIDATE_TABLE", ""),
	}

	if backend == StoreBackendDynamo && cfg.DynamoTable == "" {
		return nil, fmt.Errorf("DYNAMO_CANDIDATE_TABLE must be set for the dynamo backend")
	}

	return cfg, nil
}
