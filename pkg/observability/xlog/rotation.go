package xlog

import (
	"errors"
	"fmt"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 轮转默认值。
const (
	DefaultMaxSizeMB  = 100
	DefaultMaxBackups = 5
	DefaultMaxAgeDays = 14
)

// ErrInvalidRotation 表示轮转参数不合法。
var ErrInvalidRotation = errors.New("xlog: invalid rotation config")

// RotationOption 配置日志文件轮转。
type RotationOption func(*lumberjack.Logger)

// WithMaxSize 单个文件最大大小（MB），必须大于 0。
func WithMaxSize(mb int) RotationOption {
	return func(l *lumberjack.Logger) { l.MaxSize = mb }
}

// WithMaxBackups 保留的旧文件数，0 表示不限。
func WithMaxBackups(n int) RotationOption {
	return func(l *lumberjack.Logger) { l.MaxBackups = n }
}

// WithMaxAge 旧文件保留天数，0 表示不按时间清理。
func WithMaxAge(days int) RotationOption {
	return func(l *lumberjack.Logger) { l.MaxAge = days }
}

// WithCompress 是否 gzip 压缩旧文件。
func WithCompress(compress bool) RotationOption {
	return func(l *lumberjack.Logger) { l.Compress = compress }
}

func newRotator(filename string, opts ...RotationOption) (*lumberjack.Logger, error) {
	if filename == "" {
		return nil, fmt.Errorf("%w: empty filename", ErrInvalidRotation)
	}
	l := &lumberjack.Logger{
		Filename:   filepath.Clean(filename),
		MaxSize:    DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAge:     DefaultMaxAgeDays,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	if l.MaxSize <= 0 {
		return nil, fmt.Errorf("%w: max size %d", ErrInvalidRotation, l.MaxSize)
	}
	if l.MaxBackups < 0 || l.MaxAge < 0 {
		return nil, fmt.Errorf("%w: negative retention", ErrInvalidRotation)
	}
	return l, nil
}
