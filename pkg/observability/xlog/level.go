package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别，取值与 slog.Level 相同。
type Level slog.Level

// 日志级别。
const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// String 返回 DEBUG/INFO/WARN/ERROR，其余值按 slog 的格式输出。
func (l Level) String() string {
	return slog.Level(l).String()
}

// MarshalText 实现 encoding.TextMarshaler。
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 解析级别名，大小写不敏感，忽略首尾空白。
// 空字符串视为 info。
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return LevelInfo, nil
	}
	if l, ok := levelNames[name]; ok {
		return l, nil
	}
	return LevelInfo, fmt.Errorf("xlog: unknown level %q", s)
}
