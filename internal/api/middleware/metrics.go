package middleware

import (
	"time"

	"vidtube-go/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics 按路由模板统计请求数和耗时，避免把路径参数变成标签
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
