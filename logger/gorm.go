package logger

import (
	"strings"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

type gormWriter struct {
	sugar *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.sugar.Infof(format, args...)
}

// NewGormLogger 将 gorm 的 SQL 日志输出到 zap
// level: silent / error / warn / info，未知值按 warn 处理
func NewGormLogger(log *zap.Logger, level string) gormlogger.Interface {
	return gormlogger.New(gormWriter{sugar: log.Named("gorm").Sugar()}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  ParseGormLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// ParseGormLevel 解析 gorm 日志级别
func ParseGormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
