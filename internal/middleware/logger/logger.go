package logger

import (
	"TextAnalyzer/pkg/back"
	"TextAnalyzer/pkg/util"
	"TextAnalyzer/pkg/xerr"
	"TextAnalyzer/pkg/zlog"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestIDHeader 请求 ID 头
const RequestIDHeader = "X-Request-ID"

// RequestID 为每个请求分配（或沿用）请求 ID，并写回响应头
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := util.NormalizeRequestID(c.GetHeader(RequestIDHeader))
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Access 访问日志
func Access() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		fields := []zap.Field{
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			zlog.Error("request", fields...)
			return
		}
		zlog.Info("request", fields...)
	}
}

// Recovery 捕获 panic，记录日志并返回统一错误结构
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		zlog.Error("panic recovered",
			zap.String("request_id", c.GetString("request_id")),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.Stack("stack"))
		back.Abort(c, xerr.ErrServerError)
	})
}

// BodyLimit 限制请求体大小，超过时 JSON 解析会返回 *http.MaxBytesError
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil && maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// IsBodyTooLarge 判断绑定错误是否因请求体超限
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
