package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopsmart/storefront-backend/pkg/clients"
	"github.com/shopsmart/storefront-backend/pkg/e"
)

// SessionRepo хранит чёрный список отозванных jti.
// Ключ живёт ровно до истечения токена: после этого токен
// отвергается проверкой exp и запись больше не нужна.
type SessionRepo struct {
	client *clients.RedisClient
}

func NewSessionRepo(client *clients.RedisClient) *SessionRepo {
	return &SessionRepo{client: client}
}

func (s *SessionRepo) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := s.client.Client.Set(ctx, s.revokedKey(jti), "1", ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// IsRevoked отвечает строго: сбой Redis не трактуется как "не отозван",
// иначе отозванная сессия оживала бы на время сбоя.
func (s *SessionRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := s.client.Client.Get(ctx, s.revokedKey(jti)).Err()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}

		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return true, nil
}

func (s *SessionRepo) revokedKey(jti string) string {
	return fmt.Sprintf("session:revoked:%s", jti)
}
