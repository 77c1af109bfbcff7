package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const RedisSessionKeyPrefix = "browse_session:"

type browseSessionRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBrowseSessionRedisRepository stores each session as one JSON value
// whose TTL is refreshed on every save.
func NewBrowseSessionRedisRepository(client *redis.Client, ttl time.Duration) domainRepo.BrowseSessionRepository {
	return &browseSessionRedisRepository{client: client, ttl: ttl}
}

func (r *browseSessionRedisRepository) Save(ctx context.Context, session *entity.BrowseSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	if err := r.client.Set(ctx, RedisSessionKeyPrefix+session.ID.String(), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *browseSessionRedisRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BrowseSession, error) {
	payload, err := r.client.Get(ctx, RedisSessionKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	var session entity.BrowseSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &session, nil
}
