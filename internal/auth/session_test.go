package auth

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*SessionManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewSessionManager(rdb), mr
}

func TestCodeRoundTrip(t *testing.T) {
	s, mr := newTestManager(t)

	require.NoError(t, s.SaveCode("13800000000", "123456"))

	code, err := s.GetCode("13800000000")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
	assert.Equal(t, LoginCodeTTL, mr.TTL("login:code:13800000000"))
}

func TestGetCodeMissing(t *testing.T) {
	s, _ := newTestManager(t)

	_, err := s.GetCode("13800000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCodeExpires(t *testing.T) {
	s, mr := newTestManager(t)
	require.NoError(t, s.SaveCode("13800000000", "123456"))

	mr.FastForward(LoginCodeTTL + time.Second)

	_, err := s.GetCode("13800000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRoundTrip(t *testing.T) {
	s, mr := newTestManager(t)

	fields := map[string]string{"id": "42", "nickname": "user_abcde12345"}
	require.NoError(t, s.SaveSession("tok", fields))

	got, err := s.GetSession("tok")
	require.NoError(t, err)
	assert.Equal(t, fields, got)
	assert.Equal(t, LoginSessionTTL, mr.TTL("login:token:tok"))
}

func TestGetSessionUnknownToken(t *testing.T) {
	s, _ := newTestManager(t)

	got, err := s.GetSession("nope")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRefreshSessionExtendsTTL(t *testing.T) {
	s, mr := newTestManager(t)
	require.NoError(t, s.SaveSession("tok", map[string]string{"id": "1"}))

	mr.FastForward(29 * time.Minute)
	require.NoError(t, s.RefreshSession("tok"))

	assert.Equal(t, LoginSessionTTL, mr.TTL("login:token:tok"))

	// 续期后再过 29 分钟仍然有效
	mr.FastForward(29 * time.Minute)
	got, err := s.GetSession("tok")
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestNewTokenShape(t *testing.T) {
	token := NewToken()
	assert.Len(t, token, 32)
	assert.NotContains(t, token, "-")
	assert.NotEqual(t, token, NewToken())
}

func TestRandomNumericCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := RandomNumericCode(6)
		assert.Regexp(t, `^\d{6}$`, code)
	}
}
