package repositories

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-health-tracker/internal/logger"
)

// SessionCacheRepository stores session id to user id bindings in Redis
type SessionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // session lifetime
}

// NewSessionCacheRepository creates a new repository; every session expires after exp.
func NewSessionCacheRepository(client *redis.Client, expiration time.Duration) *SessionCacheRepository {
	return &SessionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Save binds the session to the user.
func (r *SessionCacheRepository) Save(ctx context.Context, sessionID string, userID int64) error {
	key := sessionKey(sessionID)
	err := r.client.Set(ctx, key, strconv.FormatInt(userID, 10), r.exp).Err()

	logger.Log.Infow("session saved",
		"key", key,
		"user_id", userID,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Get returns the user bound to the session. Unknown or expired sessions yield ErrSessionNotFound.
func (r *SessionCacheRepository) Get(ctx context.Context, sessionID string) (int64, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("session lookup failed", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Errorw("corrupted session value", "key", key, "value", val, "error", err)
		return 0, err
	}

	return userID, nil
}

// Delete removes the session. Deleting an unknown session is not an error.
func (r *SessionCacheRepository) Delete(ctx context.Context, sessionID string) error {
	key := sessionKey(sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session deleted", "key", key, "error", err)

	return err
}
