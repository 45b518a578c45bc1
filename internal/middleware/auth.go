package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/graphmates/graphmates-api/internal/config"
)

// AuthMiddleware 认证中间件
// 带有效 JWT 时取其 sub 声明作用户；否则依次回退到 X-User-ID 头与配置的默认用户
func AuthMiddleware(cfg *config.AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if cfg.JWTSecret != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if userID := subjectFromToken(tokenString, cfg.JWTSecret); userID != "" {
				c.Set("user_id", userID)
				c.Next()
				return
			}
			// Token 无效，继续尝试其他方式
		}

		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			userID = cfg.DefaultUser
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

func subjectFromToken(tokenString, secret string) string {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return subject
}

// UserID 读取上下文中的用户标识
func UserID(c *gin.Context) string {
	return c.GetString("user_id")
}
