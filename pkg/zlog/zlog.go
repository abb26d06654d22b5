package zlog

import (
	"os"
	"path/filepath"
	"sync"

	"TextAnalyzer/internal/config"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = newConsoleLogger(zapcore.InfoLevel)
)

// Init 按配置初始化全局 logger：JSON 写入滚动日志文件，可选同时输出到控制台
func Init(conf config.LogConfig) error {
	level := zapcore.InfoLevel
	if conf.Level != "" {
		lvl, err := zapcore.ParseLevel(conf.Level)
		if err != nil {
			return err
		}
		level = lvl
	}

	var cores []zapcore.Core
	if conf.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(conf.LogPath), 0o755); err != nil {
			return err
		}
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.LogPath,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAgeDays,
			LocalTime:  true,
			Compress:   true,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), writer, level))
	}
	if conf.Console || len(cores) == 0 {
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.Lock(os.Stdout), level))
	}

	Replace(zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)))
	return nil
}

// Replace 替换全局 logger（测试中可传入 observer）
func Replace(l *zap.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// L 返回当前全局 logger
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	L().Fatal(msg, fields...)
}

// Sync 刷新缓冲
func Sync() error {
	return L().Sync()
}

func encoderConfig() zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	return ec
}

func newConsoleLogger(level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.Lock(os.Stderr), level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}
