package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"go-courses-api/internal/core/ports"
)

type Adapter struct {
	client *redis.Client
}

func NewAdapter(addr string) *Adapter {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &Adapter{client: rdb}
}

// Ensure Adapter implements ports.Cache
var _ ports.Cache = (*Adapter)(nil)

const (
	Prefix = "course:"
	TTL    = 24 * time.Hour
)

func (a *Adapter) Set(ctx context.Context, id string, data []byte) error {
	return a.client.Set(ctx, Prefix+id, data, TTL).Err()
}

func (a *Adapter) Get(ctx context.Context, id string) ([]byte, bool, error) {
	data, err := a.client.Get(ctx, Prefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (a *Adapter) Remove(ctx context.Context, id string) error {
	return a.client.Del(ctx, Prefix+id).Err()
}
