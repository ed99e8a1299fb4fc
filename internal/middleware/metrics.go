package middleware

import (
	"strconv"
	"time"

	"go-event-management/internal/monitoring"

	"github.com/gin-gonic/gin"
)

// Metrics 記錄每個請求的次數與延遲，path 使用路由樣板避免高基數
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		monitoring.ObserveRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
