package service

import (
	"TextAnalyzer/internal/modules/analyzer/application/dto/request"
	"TextAnalyzer/internal/modules/analyzer/application/dto/respond"
	"TextAnalyzer/internal/modules/analyzer/domain/analysis"
	"TextAnalyzer/pkg/xerr"
	"TextAnalyzer/pkg/zlog"
	"unicode/utf8"

	"go.uber.org/zap"
)

// TextAnalyzerService 文本分析应用服务
type TextAnalyzerService interface {
	// Analyze 统计 text 中的元音/辅音频次
	//
	// 错误：
	//   - text 缺失: xerr.ErrMissingText
	//   - strictMode 下 analysisType 非法: xerr.ErrInvalidMode
	Analyze(req request.AnalyzeRequest, analysisType string) (*analysis.FrequencyResult, error)
	// Summarize 同 Analyze，并附带前端展示用的句子
	Summarize(req request.AnalyzeRequest, analysisType string) (*respond.SummaryRespond, error)
}

type textAnalyzerServiceImpl struct {
	analyzer   *analysis.Analyzer
	strictMode bool
}

// NewTextAnalyzerService 构造函数
func NewTextAnalyzerService(analyzer *analysis.Analyzer, strictMode bool) TextAnalyzerService {
	return &textAnalyzerServiceImpl{analyzer: analyzer, strictMode: strictMode}
}

func (s *textAnalyzerServiceImpl) Analyze(req request.AnalyzeRequest, analysisType string) (*analysis.FrequencyResult, error) {
	if req.Text == nil {
		return nil, xerr.ErrMissingText
	}
	mode, ok := analysis.ParseMode(analysisType)
	if !ok {
		if s.strictMode {
			return nil, xerr.ErrInvalidMode
		}
		zlog.Warn("unknown analysis type, returning empty result", zap.String("analysis_type", analysisType))
	}

	result := s.analyzer.Analyze(*req.Text, mode)
	zlog.Debug("text analyzed",
		zap.String("analysis_type", analysisType),
		zap.Int("text_runes", utf8.RuneCountInString(*req.Text)),
		zap.Int("entries", result.Len()))
	return result, nil
}

func (s *textAnalyzerServiceImpl) Summarize(req request.AnalyzeRequest, analysisType string) (*respond.SummaryRespond, error) {
	result, err := s.Analyze(req, analysisType)
	if err != nil {
		return nil, err
	}
	return &respond.SummaryRespond{
		AnalysisType: analysisType,
		Counts:       result,
		Summary:      analysis.Summarize(result),
	}, nil
}
