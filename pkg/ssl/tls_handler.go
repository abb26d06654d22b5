package ssl

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
)

// TlsHandler 安全响应头；启用 TLS 时额外把 HTTP 请求重定向到 HTTPS
func TlsHandler(host string, port int, tlsEnabled bool) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect:        tlsEnabled,
		SSLHost:            host + ":" + strconv.Itoa(port),
		FrameDeny:          true,
		ContentTypeNosniff: true,
	})
	return func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)

		// Process 已经写入了响应（重定向），这里只需结束本次处理链
		if err != nil {
			c.Abort()
			return
		}

		c.Next()
	}
}
