package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

// Redis key 前缀和有效期。前缀是对外约定，不能改。
const (
	loginCodeKey  = "login:code:"
	loginTokenKey = "login:token:"

	LoginCodeTTL    = 2 * time.Minute
	LoginSessionTTL = 30 * time.Minute
)

// ErrNotFound 表示 key 不存在或已过期，对验证码来说两者等价
var ErrNotFound = errors.New("auth: key not found")

// SessionManager persists verification codes and login sessions in Redis,
// so any stateless instance can validate a request.
type SessionManager struct {
	rdb *redis.Client
}

func NewSessionManager(rdb *redis.Client) *SessionManager {
	return &SessionManager{rdb: rdb}
}

// SaveCode stores the pending verification code for a phone. Re-sending
// overwrites the previous code; the TTL restarts from now.
func (s *SessionManager) SaveCode(phone, code string) error {
	return s.rdb.Set(ctx, loginCodeKey+phone, code, LoginCodeTTL).Err()
}

// GetCode fetches the pending code; ErrNotFound covers both never-sent
// and expired.
func (s *SessionManager) GetCode(phone string) (string, error) {
	val, err := s.rdb.Get(ctx, loginCodeKey+phone).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SaveSession writes the profile hash for a token and starts its TTL.
func (s *SessionManager) SaveSession(token string, fields map[string]string) error {
	key := loginTokenKey + token
	values := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	if err := s.rdb.HSet(ctx, key, values).Err(); err != nil {
		return err
	}
	return s.rdb.Expire(ctx, key, LoginSessionTTL).Err()
}

// GetSession returns all session fields; an empty map means the token is
// unknown or expired.
func (s *SessionManager) GetSession(token string) (map[string]string, error) {
	return s.rdb.HGetAll(ctx, loginTokenKey+token).Result()
}

// RefreshSession 滑动续期：每次带 token 的请求把有效期重置为 30 分钟
func (s *SessionManager) RefreshSession(token string) error {
	return s.rdb.Expire(ctx, loginTokenKey+token, LoginSessionTTL).Err()
}
