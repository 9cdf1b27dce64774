package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adiwangsa/forum-api/domain"
)

const keyRefreshToken = "authentication:token:%s"

// authenticationRepository keeps issued refresh tokens in redis so revoking
// a session is a plain key delete and tokens expire with the store TTL.
type authenticationRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ domain.AuthenticationRepository = (*authenticationRepository)(nil)

func NewAuthenticationRepository(client *redis.Client, ttl time.Duration) *authenticationRepository {
	return &authenticationRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *authenticationRepository) AddToken(ctx context.Context, token string) error {
	key := fmt.Sprintf(keyRefreshToken, token)
	return r.client.Set(ctx, key, 1, r.ttl).Err()
}

func (r *authenticationRepository) VerifyTokenExists(ctx context.Context, token string) error {
	key := fmt.Sprintf(keyRefreshToken, token)
	err := r.client.Get(ctx, key).Err()
	if errors.Is(err, redis.Nil) {
		return domain.ErrRefreshTokenInvalid
	}
	return err
}

func (r *authenticationRepository) DeleteToken(ctx context.Context, token string) error {
	key := fmt.Sprintf(keyRefreshToken, token)
	return r.client.Del(ctx, key).Err()
}
