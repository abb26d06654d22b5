package util

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateShortUUID(t *testing.T) {
	short := GenerateShortUUID()
	if len(short) != 32 || strings.Contains(short, "-") {
		t.Errorf("unexpected short uuid %q", short)
	}
	if _, err := uuid.Parse(short); err != nil {
		t.Errorf("short uuid not parseable: %v", err)
	}
}

func TestNormalizeRequestID(t *testing.T) {
	if got := NormalizeRequestID("abc-123_X"); got != "abc-123_X" {
		t.Errorf("valid id rewritten: %s", got)
	}
	for _, bad := range []string{"", "   ", "has space", "new\nline", string(make([]byte, 65))} {
		got := NormalizeRequestID(bad)
		if got == bad || len(got) != 32 {
			t.Errorf("NormalizeRequestID(%q) = %q, expected fresh id", bad, got)
		}
	}
}
