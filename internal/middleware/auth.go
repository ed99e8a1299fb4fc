package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"go-event-management/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "authUser"

// Auth 驗證 Bearer token 並將 {id, email, role} 放入 context。
// 缺 token 回 401，token 無效或過期回 403。
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := parseBearer(c, secret)
		if err != nil {
			status := http.StatusForbidden
			message := "Invalid or expired token"
			if err == errMissingToken {
				status = http.StatusUnauthorized
				message = "Bearer token is required"
			}
			c.AbortWithStatusJSON(status, gin.H{
				"error":   http.StatusText(status),
				"message": message,
			})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth 有帶 token 就解析身份，沒帶照常放行（例如未登入送出客服工單）
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := parseBearer(c, secret); err == nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// CurrentUser 取出 Auth middleware 放入的請求者身份
func CurrentUser(c *gin.Context) (model.AuthUser, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return model.AuthUser{}, false
	}
	user, ok := value.(model.AuthUser)
	return user, ok
}

var errMissingToken = fmt.Errorf("bearer token is required")

func parseBearer(c *gin.Context, secret string) (model.AuthUser, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return model.AuthUser{}, errMissingToken
	}

	tokenStr := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return model.AuthUser{}, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.AuthUser{}, fmt.Errorf("invalid claims")
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return model.AuthUser{}, fmt.Errorf("invalid subject claim")
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if role == "" {
		role = string(model.UserRoleUser)
	}

	return model.AuthUser{
		ID:    int(sub),
		Email: email,
		Role:  model.UserRole(role),
	}, nil
}
