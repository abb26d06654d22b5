package analysis

import (
	"slices"
	"strings"
)

// vowelOrder 元音的固定展示顺序
var vowelOrder = []string{"A", "E", "I", "O", "U"}

// offlineConsonants 离线模式只统计这些辅音字母
const offlineConsonants = "BCDFGHJKLMNPQRSTVWXYZ"

// IsVowel 不区分大小写地判断 a/e/i/o/u
func IsVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// Analyzer 统计文本中的元音或“辅音”频次。无状态，可并发使用。
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze 按模式统计字符频次。
//
//   - vowels: 固定返回 A,E,I,O,U 五个 key（大写，零值也保留）
//   - consonants: 统计小写化后所有非元音字符（包括数字、标点、空白），key 升序
//   - 其他模式: 返回空结果
func (a *Analyzer) Analyze(text string, mode Mode) *FrequencyResult {
	switch mode {
	case ModeVowels:
		return countVowels(text)
	case ModeConsonants:
		counts := make(map[string]int)
		for _, r := range strings.ToLower(text) {
			if !IsVowel(r) {
				counts[string(r)]++
			}
		}
		return sortedResult(counts)
	default:
		return NewFrequencyResult()
	}
}

// AnalyzeOffline 前端离线模式的统计口径：元音同 Analyze，
// 辅音只计 21 个英文辅音字母，key 为大写。
func (a *Analyzer) AnalyzeOffline(text string, mode Mode) *FrequencyResult {
	switch mode {
	case ModeVowels:
		return countVowels(text)
	case ModeConsonants:
		counts := make(map[string]int)
		for _, r := range strings.ToUpper(text) {
			if strings.ContainsRune(offlineConsonants, r) {
				counts[string(r)]++
			}
		}
		return sortedResult(counts)
	default:
		return NewFrequencyResult()
	}
}

func countVowels(text string) *FrequencyResult {
	result := NewFrequencyResult()
	for _, v := range vowelOrder {
		result.Set(v, 0)
	}
	for _, r := range strings.ToUpper(text) {
		if IsVowel(r) {
			result.Increment(string(r))
		}
	}
	return result
}

// sortedResult 按 key 的码点升序写入结果
func sortedResult(counts map[string]int) *FrequencyResult {
	result := NewFrequencyResult()
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		result.Set(k, counts[k])
	}
	return result
}
