package http

import (
	"TextAnalyzer/internal/config"
	jwtMiddleware "TextAnalyzer/internal/middleware/jwt"
	"TextAnalyzer/internal/middleware/logger"
	"TextAnalyzer/internal/modules/analyzer/application/service"
	"TextAnalyzer/internal/modules/analyzer/domain/analysis"
	analyzerHandler "TextAnalyzer/internal/modules/analyzer/interface/http"
	analyzerWs "TextAnalyzer/internal/modules/analyzer/interface/websocket"
	"TextAnalyzer/pkg/back"
	"TextAnalyzer/pkg/ssl"

	cors "github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewEngine 按配置装配路由与依赖
func NewEngine(conf *config.Config) *gin.Engine {
	ge := gin.New()
	ge.Use(logger.RequestID(), logger.Access(), logger.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = conf.AllowOrigins
	corsConfig.AllowMethods = conf.AllowMethods
	corsConfig.AllowHeaders = conf.AllowHeaders
	corsConfig.ExposeHeaders = []string{logger.RequestIDHeader}
	ge.Use(cors.New(corsConfig))
	ge.Use(ssl.TlsHandler(conf.Host, conf.Port, conf.TLSEnabled()))
	ge.Use(logger.BodyLimit(conf.MaxBodyBytes))

	analyzer := analysis.NewAnalyzer()
	analyzerSvc := service.NewTextAnalyzerService(analyzer, conf.StrictMode)
	analyzerH := analyzerHandler.NewTextAnalyzerHandler(analyzerSvc)

	api := ge.Group("/api/text-analyzer")
	api.GET("/health", func(c *gin.Context) {
		back.Success(c, gin.H{
			"status": "ok",
			"app":    conf.AppName,
		})
	})

	authed := api.Group("")
	if conf.JwtConfig.Enabled {
		authed.Use(jwtMiddleware.Auth(conf.JwtConfig))
	}
	authed.POST("/analyze/:analysisType", analyzerH.Analyze)
	authed.POST("/summary/:analysisType", analyzerH.Summary)
	if conf.WsEnabled {
		wsH := analyzerWs.NewAnalyzerWsHandler(analyzerSvc, conf.AllowOrigins, conf.MaxBodyBytes)
		authed.GET("/ws", wsH.Connect)
	}

	return ge
}
