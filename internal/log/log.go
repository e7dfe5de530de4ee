package log

import (
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"sync"
	"time"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelError Level = "ERROR"
)

var (
	logger     *stdlog.Logger
	loggerOnce sync.Once
	minLevel   = LevelInfo
)

// initLogger initializes the global logger to write to stderr with timestamps.
// The minimum level can be set up front via EWSCAL_LOG_LEVEL (DEBUG/INFO/ERROR).
func initLogger() {
	loggerOnce.Do(func() {
		logger = stdlog.New(os.Stderr, "", stdlog.LstdFlags|stdlog.Lmicroseconds)
		if lvl, ok := parseLevel(os.Getenv("EWSCAL_LOG_LEVEL")); ok {
			minLevel = lvl
		}
	})
}

func parseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, true
	case "INFO":
		return LevelInfo, true
	case "ERROR":
		return LevelError, true
	default:
		return "", false
	}
}

func SetLevel(l Level) {
	initLogger()
	minLevel = l
}

func Debug(msg string, kv ...any) {
	logWithLevel(LevelDebug, msg, kv...)
}

func Info(msg string, kv ...any) {
	logWithLevel(LevelInfo, msg, kv...)
}

func Error(msg string, err error, kv ...any) {
	// Prepend error into key-value list.
	extended := append([]any{"err", err}, kv...)
	logWithLevel(LevelError, msg, extended...)
}

func logWithLevel(level Level, msg string, kv ...any) {
	initLogger()
	if !enabled(level) {
		return
	}

	ts := time.Now().Format(time.RFC3339Nano)

	// Line format:
	// 2025-01-01T00:00:00Z [LEVEL] msg key=value ...
	line := ts + " [" + string(level) + "] " + msg
	if len(kv) > 0 {
		line += formatKVs(kv...)
	}

	logger.Println(line)
}

func enabled(level Level) bool {
	switch minLevel {
	case LevelDebug:
		return true
	case LevelInfo:
		return level == LevelInfo || level == LevelError
	case LevelError:
		return level == LevelError
	default:
		return true
	}
}

func formatKVs(kv ...any) string {
	var b strings.Builder
	// Expect kv as pairs: key, value, key, value, ...
	// If the count is odd, the trailing value is ignored.
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		b.WriteString(" ")
		b.WriteString(key)
		b.WriteString("=")
		b.WriteString(fmt.Sprint(kv[i+1]))
	}
	return b.String()
}
