package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	cache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/jwalitptl/clinic-portal/internal/model"
)

// Store holds what the login pages persist per browser session: the backend
// token and the viewer role. Both are read fresh at point of use; an absent
// token is a normal state, not an error.
type Store interface {
	Token(ctx context.Context, sid string) (string, error)
	Role(ctx context.Context, sid string) (model.Role, error)
	Put(ctx context.Context, sid, token string, role model.Role) error
	Clear(ctx context.Context, sid string) error
}

const (
	keyPrefix  = "portal:session:"
	fieldToken = "token"
	fieldRole  = "role"
)

// RedisStore keeps sessions in Redis hashes. Parsed role claims are
// memoized per token so repeated renders don't re-parse the JWT.
type RedisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	claims *cache.Cache
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb:    rdb,
		ttl:    ttl,
		claims: cache.New(ttl, 2*ttl),
	}
}

func sessionKey(sid string) string {
	return keyPrefix + sid
}

func (s *RedisStore) Token(ctx context.Context, sid string) (string, error) {
	token, err := s.rdb.HGet(ctx, sessionKey(sid), fieldToken).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	return token, nil
}

// Role returns the viewer role for the session. When the hash carries no
// explicit role but a token exists, the role is recovered from the token's
// claim set.
func (s *RedisStore) Role(ctx context.Context, sid string) (model.Role, error) {
	key := sessionKey(sid)
	role, err := s.rdb.HGet(ctx, key, fieldRole).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return model.RoleUnknown, fmt.Errorf("failed to read session role: %w", err)
	}
	if role != "" {
		return model.ParseRole(role), nil
	}

	token, err := s.Token(ctx, sid)
	if err != nil {
		return model.RoleUnknown, err
	}
	if token == "" {
		return model.RoleUnknown, nil
	}
	if cached, ok := s.claims.Get(token); ok {
		return cached.(model.Role), nil
	}
	r := RoleFromToken(token)
	s.claims.SetDefault(token, r)
	return r, nil
}

func (s *RedisStore) Put(ctx context.Context, sid, token string, role model.Role) error {
	key := sessionKey(sid)
	if err := s.rdb.HSet(ctx, key, fieldToken, token, fieldRole, role.String()).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	if err := s.rdb.Expire(ctx, key, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session ttl: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	if err := s.rdb.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// RoleFromToken extracts the role claim from a backend-issued JWT. The
// portal never holds the signing secret, so the token is parsed without
// verification; the claim is only a rendering hint, every privileged call
// is still judged by the backend.
func RoleFromToken(token string) model.Role {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return model.RoleUnknown
	}
	role, _ := claims["role"].(string)
	return model.ParseRole(role)
}
