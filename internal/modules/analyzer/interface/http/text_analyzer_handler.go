package handler

import (
	"TextAnalyzer/internal/middleware/logger"
	"TextAnalyzer/internal/modules/analyzer/application/dto/request"
	"TextAnalyzer/internal/modules/analyzer/application/service"
	"TextAnalyzer/pkg/back"
	"TextAnalyzer/pkg/xerr"
	"TextAnalyzer/pkg/zlog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TextAnalyzerHandler 文本分析 HTTP Handler
type TextAnalyzerHandler struct {
	svc service.TextAnalyzerService
}

// NewTextAnalyzerHandler 创建文本分析 Handler
func NewTextAnalyzerHandler(svc service.TextAnalyzerService) *TextAnalyzerHandler {
	return &TextAnalyzerHandler{svc: svc}
}

// Analyze 统计元音/辅音频次
//
// 路由: POST /api/text-analyzer/analyze/:analysisType
// 请求体: {"text": "..."}
// 响应体: 有序的 {"字符": 次数} 对象（不包统一响应结构）
func (h *TextAnalyzerHandler) Analyze(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	data, err := h.svc.Analyze(req, c.Param("analysisType"))
	if err != nil {
		back.Result(c, nil, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// Summary 统计并返回可读描述
//
// 路由: POST /api/text-analyzer/summary/:analysisType
// 响应体: back.Response{data: SummaryRespond}
func (h *TextAnalyzerHandler) Summary(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	data, err := h.svc.Summarize(req, c.Param("analysisType"))
	back.Result(c, data, err)
}

func (h *TextAnalyzerHandler) bind(c *gin.Context) (request.AnalyzeRequest, bool) {
	var req request.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zlog.Warn("bind analyze request failed",
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err))
		if logger.IsBodyTooLarge(err) {
			back.Error(c, xerr.ErrBodyTooLarge.Code, xerr.ErrBodyTooLarge.Message)
			return req, false
		}
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return req, false
	}
	return req, true
}
