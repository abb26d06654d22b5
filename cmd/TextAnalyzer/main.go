package main

import (
	"os"

	"TextAnalyzer/pkg/zlog"

	"go.uber.org/zap"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		zlog.Error("command failed", zap.Error(err))
		_ = zlog.Sync()
		os.Exit(1)
	}
}
