package auth

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

const nickChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewToken 生成登录令牌：UUID 去掉中划线。令牌本身不带任何信息，
// 有效性完全取决于 Redis 里对应的会话是否存在。
func NewToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// RandomNumericCode returns n uniformly distributed decimal digits.
func RandomNumericCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0' + byte(rand.Intn(10))
	}
	return string(b)
}

// RandomString 生成默认昵称用的随机串（小写字母+数字）
func RandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = nickChars[rand.Intn(len(nickChars))]
	}
	return string(b)
}
