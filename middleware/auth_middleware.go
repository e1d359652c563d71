package middleware

import (
	"net/http"
	"strings"

	"dianping/internal/auth"
	"dianping/model"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验登录 token：Redis 里存在对应会话 hash 即视为已登录，
// 令牌本身不带签名。每次访问顺带把会话续期 30 分钟（滑动过期）。
func AuthMiddleware(session *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		fields, err := session.GetSession(token)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
			c.Abort()
			return
		}
		if len(fields) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// 记录损坏和令牌伪造无法区分，一律按未登录处理
		profile, err := model.ProfileFromFields(fields)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		_ = session.RefreshSession(token)

		// 将用户信息写入上下文
		c.Set("user", profile)
		c.Next()
	}
}
