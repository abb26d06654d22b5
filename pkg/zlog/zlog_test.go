package zlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"TextAnalyzer/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplaceRoutesPackageFunctions(t *testing.T) {
	prev := L()
	defer Replace(prev)

	core, logs := observer.New(zap.DebugLevel)
	Replace(zap.New(core))

	Info("analysis done", zap.String("mode", "vowels"))
	Warn("bad payload")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "analysis done" || entries[0].ContextMap()["mode"] != "vowels" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Level != zap.WarnLevel {
		t.Errorf("expected warn level, got %s", entries[1].Level)
	}
}

func TestInitWritesJSONFile(t *testing.T) {
	prev := L()
	defer Replace(prev)

	path := filepath.Join(t.TempDir(), "nested", "app.log")
	err := Init(config.LogConfig{LogPath: path, Level: "debug", MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	Debug("hello file", zap.Int("count", 3))
	_ = Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello file"`) || !strings.Contains(string(data), `"count":3`) {
		t.Errorf("log file missing entry: %s", data)
	}
}

func TestInitRejectsUnknownLevel(t *testing.T) {
	if err := Init(config.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}
