package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go-event-management/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// 固定視窗計數：第一次命中時設定過期時間，原子性由 Lua 保證
var limiterScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return current
`)

// RateLimit 以 client IP 為單位限制請求次數，超過回 429。
// redis 故障時放行（限流是保護措施，不應成為單點故障）。
func RateLimit(rdb *redis.Client, scope string, limit int, window time.Duration, message string) gin.HandlerFunc {
	log := logger.WithComponent("ratelimit")

	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", scope, c.ClientIP())

		count, err := limiterScript.Run(c, rdb, []string{key}, window.Milliseconds()).Int()
		if err != nil {
			log.Warn("Rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}

		if count > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": message,
			})
			return
		}

		c.Next()
	}
}
