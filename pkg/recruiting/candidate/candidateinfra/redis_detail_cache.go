package candidateinfra

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/talenta-pe/talenta/pkg/errx"
	"github.com/talenta-pe/talenta/pkg/kernel"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate"
)

// RedisDetailCache implementación en Redis del DetailCache.
// Guarda la vista agregada del candidato serializada como JSON; la agenda de
// entrevistas y la contratación la invalidan en cada mutación del pipeline.
type RedisDetailCache struct {
	client *redis.Client
}

// NewRedisDetailCache crea una nueva caché de detalle con Redis
func NewRedisDetailCache(client *redis.Client) candidate.DetailCache {
	return &RedisDetailCache{
		client: client,
	}
}

func detailKey(id kernel.CandidateID) string {
	return fmt.Sprintf("candidate_detail:%s", id.String())
}

// Get obtiene la vista cacheada, o nil si no hay entrada
func (c *RedisDetailCache) Get(ctx context.Context, id kernel.CandidateID) (*candidate.Detail, error) {
	jsonData, err := c.client.Get(ctx, detailKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errx.Wrap(err, "failed to get candidate detail from cache", errx.TypeInternal).
			WithDetail("candidate_id", id.String())
	}

	var detail candidate.Detail
	if err := json.Unmarshal([]byte(jsonData), &detail); err != nil {
		return nil, errx.Wrap(err, "failed to unmarshal cached candidate detail", errx.TypeInternal).
			WithDetail("candidate_id", id.String())
	}

	return &detail, nil
}

// Set almacena la vista con el TTL dado
func (c *RedisDetailCache) Set(ctx context.Context, detail *candidate.Detail, ttl time.Duration) error {
	jsonData, err := json.Marshal(detail)
	if err != nil {
		return errx.Wrap(err, "failed to marshal candidate detail", errx.TypeInternal)
	}

	key := detailKey(detail.Candidate.ID)
	if err := c.client.Set(ctx, key, jsonData, ttl).Err(); err != nil {
		return errx.Wrap(err, "failed to store candidate detail in cache", errx.TypeInternal).
			WithDetail("candidate_id", detail.Candidate.ID.String())
	}

	return nil
}

// Invalidate elimina la entrada del candidato
func (c *RedisDetailCache) Invalidate(ctx context.Context, id kernel.CandidateID) error {
	if err := c.client.Del(ctx, detailKey(id)).Err(); err != nil {
		return errx.Wrap(err, "failed to invalidate candidate detail cache", errx.TypeInternal).
			WithDetail("candidate_id", id.String())
	}

	return nil
}
