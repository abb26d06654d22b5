package websocket

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"TextAnalyzer/internal/modules/analyzer/application/dto/request"
	"TextAnalyzer/internal/modules/analyzer/application/dto/respond"
	"TextAnalyzer/internal/modules/analyzer/application/service"
	"TextAnalyzer/pkg/xerr"
	"TextAnalyzer/pkg/zlog"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	writeWait  = 10 * time.Second
)

// AnalyzerWsHandler 通过 websocket 逐帧分析文本。
// 每个连接独立处理，一帧请求对应一帧响应。
type AnalyzerWsHandler struct {
	svc          service.TextAnalyzerService
	upgrader     websocket.Upgrader
	maxReadBytes int64
}

func NewAnalyzerWsHandler(svc service.TextAnalyzerService, allowOrigins []string, maxReadBytes int64) *AnalyzerWsHandler {
	return &AnalyzerWsHandler{
		svc:          svc,
		maxReadBytes: maxReadBytes,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowOrigins, "*") || slices.Contains(allowOrigins, origin)
			},
		},
	}
}

// Connect 路由: GET /api/text-analyzer/ws
func (h *AnalyzerWsHandler) Connect(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	requestID := c.GetString("request_id")
	zlog.Info("websocket connected", zap.String("request_id", requestID))

	if h.maxReadBytes > 0 {
		conn.SetReadLimit(h.maxReadBytes)
	}
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go h.ping(conn, done)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				zlog.Warn("websocket read failed", zap.String("request_id", requestID), zap.Error(err))
			}
			return
		}

		reply := h.handleFrame(payload)
		// 写操作与 ping 协程中的 WriteControl 可并发执行
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(reply); err != nil {
			zlog.Error("websocket write failed", zap.String("request_id", requestID), zap.Error(err))
			return
		}
	}
}

func (h *AnalyzerWsHandler) handleFrame(payload []byte) any {
	var req request.WsAnalyzeRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorFrame(xerr.ErrParam)
	}
	data, err := h.svc.Summarize(request.AnalyzeRequest{Text: req.Text}, req.AnalysisType)
	if err != nil {
		if ce, ok := xerr.As(err); ok {
			return errorFrame(ce)
		}
		return errorFrame(xerr.ErrServerError)
	}
	return data
}

func (h *AnalyzerWsHandler) ping(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

func errorFrame(e *xerr.CodeError) respond.WsErrorRespond {
	return respond.WsErrorRespond{Error: respond.WsError{Code: e.Code, Message: e.Message}}
}
