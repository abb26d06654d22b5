package jwt

import (
	"TextAnalyzer/internal/config"
	"TextAnalyzer/pkg/back"
	"TextAnalyzer/pkg/util/myjwt"
	"TextAnalyzer/pkg/xerr"
	"TextAnalyzer/pkg/zlog"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 校验 Bearer Token；websocket 握手无法自定义 Header，允许通过 ?token= 传入
func Auth(conf config.JwtConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if c.IsWebsocket() {
			tokenString = c.Query("token")
		}
		if tokenString == "" {
			back.Abort(c, xerr.ErrUnauthorized)
			return
		}

		claims, err := myjwt.ParseToken(conf, tokenString)
		if err != nil {
			zlog.Warn("invalid token", zap.Error(err))
			back.Abort(c, xerr.ErrUnauthorized)
			return
		}

		c.Set("subject", claims.Subject)
		c.Next()
	}
}
