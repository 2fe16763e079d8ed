package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	accessTokenKeyPrefix  = "access_token"
	refreshTokenKeyPrefix = "refresh_token"

	// Timeout for individual Redis operations
	tokenStoreTimeout = 5 * time.Second

	// Keys removed per DEL when revoking by pattern
	revokeBatchSize = 500
)

// TokenStore keeps the allow-list of issued token ids
type TokenStore interface {
	StorePair(ctx context.Context, userID uint, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error
	IsAccessValid(ctx context.Context, userID uint, tokenID string) (bool, error)
	IsRefreshValid(ctx context.Context, userID uint, tokenID string) (bool, error)
	RevokeRefresh(ctx context.Context, userID uint, tokenID string) error
	Revoke(ctx context.Context, userID uint, accessID, refreshID string) error
	RevokeAll(ctx context.Context, userID uint) error
}

type redisTokenStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewRedisTokenStore(redisClient *redis.Client, log *logrus.Logger) TokenStore {
	return &redisTokenStore{
		redisClient: redisClient,
		log:         log,
	}
}

func AccessTokenKey(userID uint, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", accessTokenKeyPrefix, userID, tokenID)
}

func RefreshTokenKey(userID uint, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", refreshTokenKeyPrefix, userID, tokenID)
}

// StorePair writes both keys in one transaction so a login never leaves half a pair behind
func (s *redisTokenStore) StorePair(ctx context.Context, userID uint, accessID string, accessTTL time.Duration, refreshID string, refreshTTL time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, tokenStoreTimeout)
	defer cancel()

	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, AccessTokenKey(userID, accessID), "valid", accessTTL)
	pipe.Set(ctx, RefreshTokenKey(userID, refreshID), "valid", refreshTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to store token pair for user %d: %+v", userID, err)
		return fmt.Errorf("store token pair for user %d: %w", userID, err)
	}
	return nil
}

func (s *redisTokenStore) IsAccessValid(ctx context.Context, userID uint, tokenID string) (bool, error) {
	return s.exists(ctx, AccessTokenKey(userID, tokenID))
}

func (s *redisTokenStore) IsRefreshValid(ctx context.Context, userID uint, tokenID string) (bool, error) {
	return s.exists(ctx, RefreshTokenKey(userID, tokenID))
}

func (s *redisTokenStore) RevokeRefresh(ctx context.Context, userID uint, tokenID string) error {
	ctx, cancel := context.WithTimeout(ctx, tokenStoreTimeout)
	defer cancel()

	if err := s.redisClient.Del(ctx, RefreshTokenKey(userID, tokenID)).Err(); err != nil {
		s.log.Warnf("Failed to delete refresh token: %+v", err)
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, userID uint, accessID, refreshID string) error {
	ctx, cancel := context.WithTimeout(ctx, tokenStoreTimeout)
	defer cancel()

	keys := []string{AccessTokenKey(userID, accessID)}
	if refreshID != "" {
		keys = append(keys, RefreshTokenKey(userID, refreshID))
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to revoke tokens for user %d: %+v", userID, err)
		return fmt.Errorf("revoke tokens for user %d: %w", userID, err)
	}
	return nil
}

// RevokeAll removes every token of the user. SCAN is used instead of KEYS
// so large keyspaces do not block the server.
func (s *redisTokenStore) RevokeAll(ctx context.Context, userID uint) error {
	for _, prefix := range []string{accessTokenKeyPrefix, refreshTokenKeyPrefix} {
		pattern := fmt.Sprintf("%s:%d:*", prefix, userID)
		if err := s.deleteMatching(ctx, pattern); err != nil {
			return err
		}
	}
	return nil
}

func (s *redisTokenStore) deleteMatching(ctx context.Context, pattern string) error {
	iter := s.redisClient.Scan(ctx, 0, pattern, revokeBatchSize).Iterator()
	batch := make([]string, 0, revokeBatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.redisClient.Del(ctx, batch...).Err(); err != nil {
			s.log.Warnf("Failed to delete keys matching %s: %+v", pattern, err)
			return fmt.Errorf("delete keys matching %s: %w", pattern, err)
		}
		batch = batch[:0]
		return nil
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == revokeBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		s.log.Warnf("Failed to scan keys matching %s: %+v", pattern, err)
		return fmt.Errorf("scan keys matching %s: %w", pattern, err)
	}
	return flush()
}

func (s *redisTokenStore) exists(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, tokenStoreTimeout)
	defer cancel()

	n, err := s.redisClient.Exists(ctx, key).Result()
	if err != nil {
		s.log.Warnf("Failed to check token in Redis: %+v", err)
		return false, err
	}
	return n > 0, nil
}
