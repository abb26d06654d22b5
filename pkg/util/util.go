package util

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateShortUUID 生成一个不带中划线的短 UUID
func GenerateShortUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// NormalizeRequestID 校验外部传入的请求 ID，非法时重新生成
func NormalizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > 64 {
		return GenerateShortUUID()
	}
	for _, r := range id {
		if !(r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return GenerateShortUUID()
		}
	}
	return id
}
