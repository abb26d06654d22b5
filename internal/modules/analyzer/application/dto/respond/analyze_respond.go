package respond

import "TextAnalyzer/internal/modules/analyzer/domain/analysis"

// SummaryRespond 分析结果及其可读描述
type SummaryRespond struct {
	AnalysisType string                    `json:"analysisType"`
	Counts       *analysis.FrequencyResult `json:"counts"`
	Summary      string                    `json:"summary"`
}

// WsErrorRespond websocket 错误帧
type WsErrorRespond struct {
	Error WsError `json:"error"`
}

type WsError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
