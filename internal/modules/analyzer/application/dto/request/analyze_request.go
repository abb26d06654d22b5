package request

// AnalyzeRequest 文本分析请求体。Text 为 nil 表示请求中缺少 text 字段（或为 null）。
type AnalyzeRequest struct {
	Text *string `json:"text"`
}

// WsAnalyzeRequest websocket 单帧请求
type WsAnalyzeRequest struct {
	AnalysisType string  `json:"analysisType"`
	Text         *string `json:"text"`
}
