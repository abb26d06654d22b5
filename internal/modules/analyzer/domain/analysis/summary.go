package analysis

import (
	"fmt"
	"strings"
)

// Summarize 渲染成前端展示的句子：the letter 'A' appears 1 times, ...
func Summarize(result *FrequencyResult) string {
	entries := result.Entries()
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("the letter '%s' appears %d times", strings.ToUpper(e.Char), e.Count))
	}
	return strings.Join(parts, ", ")
}
