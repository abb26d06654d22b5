package analysis

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry 单个字符及其出现次数
type Entry struct {
	Char  string `json:"char"`
	Count int    `json:"count"`
}

// FrequencyResult 字符 -> 次数的有序映射。
// 迭代与 JSON 序列化都按插入顺序进行，调用方负责按展示顺序插入。
type FrequencyResult struct {
	counts *orderedmap.OrderedMap[string, int]
}

// NewFrequencyResult 创建空结果
func NewFrequencyResult() *FrequencyResult {
	return &FrequencyResult{counts: orderedmap.New[string, int]()}
}

// Set 写入计数；已存在的 key 保持原有位置
func (r *FrequencyResult) Set(char string, count int) {
	r.counts.Set(char, count)
}

// Increment 已存在的 key 加一
func (r *FrequencyResult) Increment(char string) {
	n, _ := r.counts.Get(char)
	r.counts.Set(char, n+1)
}

// Get 查询计数
func (r *FrequencyResult) Get(char string) (int, bool) {
	if r == nil || r.counts == nil {
		return 0, false
	}
	return r.counts.Get(char)
}

// Len 条目数
func (r *FrequencyResult) Len() int {
	if r == nil || r.counts == nil {
		return 0
	}
	return r.counts.Len()
}

// Keys 按顺序返回所有 key
func (r *FrequencyResult) Keys() []string {
	keys := make([]string, 0, r.Len())
	for _, e := range r.Entries() {
		keys = append(keys, e.Char)
	}
	return keys
}

// Entries 按顺序返回所有条目
func (r *FrequencyResult) Entries() []Entry {
	if r == nil || r.counts == nil {
		return nil
	}
	entries := make([]Entry, 0, r.counts.Len())
	for pair := r.counts.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, Entry{Char: pair.Key, Count: pair.Value})
	}
	return entries
}

// Total 所有计数之和
func (r *FrequencyResult) Total() int {
	total := 0
	for _, e := range r.Entries() {
		total += e.Count
	}
	return total
}

// MarshalJSON 输出 {"A":0,"E":1,...}，保持插入顺序
func (r FrequencyResult) MarshalJSON() ([]byte, error) {
	if r.counts == nil {
		return []byte("{}"), nil
	}
	return r.counts.MarshalJSON()
}

// UnmarshalJSON 按 JSON 中出现的顺序还原
func (r *FrequencyResult) UnmarshalJSON(data []byte) error {
	counts := orderedmap.New[string, int]()
	if err := counts.UnmarshalJSON(data); err != nil {
		return err
	}
	r.counts = counts
	return nil
}
