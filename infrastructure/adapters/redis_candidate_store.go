package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/domain"
)

const candidateKeyFmt = "candidates:%s"

type redisCandidateStore struct {
	logger outbound.LoggerPort
	rdb    *redis.Client
	ttl    time.Duration
}

func NewRedisCandidateStore(logger outbound.LoggerPort, rdb *redis.Client, ttl time.Duration) outbound.CandidateStorePort {
	return &redisCandidateStore{
		logger: logger,
		rdb:    rdb,
		ttl:    ttl,
	}
}

func (s *redisCandidateStore) Save(ctx context.Context, set domain.CandidateSet) error {
	payload, err := json.Marshal(set)
	if err != nil {
		s.logger.Error(err, "failed to marshal candidate set")
		return err
	}
	return s.rdb.Set(ctx, fmt.Sprintf(candidateKeyFmt, set.Token), payload, s.ttl).Err()
}

func (s *redisCandidateStore) Get(ctx context.Context, token string) (*domain.CandidateSet, error) {
	payload, err := s.rdb.Get(ctx, fmt.Sprintf(candidateKeyFmt, token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCandidateSetExpired
	}
	if err != nil {
		return nil, err
	}

	var set domain.CandidateSet
	if err := json.Unmarshal(payload, &set); err != nil {
		s.logger.Error(err, "failed to unmarshal candidate set")
		return nil, err
	}

	return &set, nil
}

func (s *redisCandidateStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, fmt.Sprintf(candidateKeyFmt, token)).Err()
}
