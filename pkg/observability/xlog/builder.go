package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// ReplaceAttrFunc 在输出前改写属性，返回空 Key 的 Attr 表示删除。
type ReplaceAttrFunc func(groups []string, a slog.Attr) slog.Attr

// Builder 日志配置构建器。
//
// 遇到第一个配置错误后，后续 Set 调用被忽略，错误由 Build 返回。
type Builder struct {
	output      io.Writer
	levelVar    *slog.LevelVar
	format      string
	addSource   bool
	replaceAttr ReplaceAttrFunc
	rotator     io.WriteCloser
	onError     func(error)
	err         error
}

// New 创建构建器，默认 stderr、info、text。
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)
	return &Builder{
		output:   os.Stderr,
		levelVar: levelVar,
		format:   "text",
	}
}

// SetOutput 设置输出目标。
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if b.err != nil {
		return b
	}
	if w == nil {
		b.err = fmt.Errorf("xlog: nil output")
		return b
	}
	b.output = w
	return b
}

// SetLevel 设置初始级别。
func (b *Builder) SetLevel(level Level) *Builder {
	if b.err == nil {
		b.levelVar.Set(slog.Level(level))
	}
	return b
}

// SetLevelString 按名称设置级别，见 [ParseLevel]。
func (b *Builder) SetLevelString(s string) *Builder {
	if b.err != nil {
		return b
	}
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json，空值等同 text。
func (b *Builder) SetFormat(format string) *Builder {
	if b.err != nil {
		return b
	}
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "":
		b.format = "text"
	case "text", "json":
		b.format = f
	default:
		b.err = fmt.Errorf("xlog: unknown format %q", format)
	}
	return b
}

// SetAddSource 是否记录调用位置。
func (b *Builder) SetAddSource(enable bool) *Builder {
	if b.err == nil {
		b.addSource = enable
	}
	return b
}

// SetRotation 输出到 filename，并按大小轮转。
// 文件在 Build 返回的 cleanup 中关闭。
func (b *Builder) SetRotation(filename string, opts ...RotationOption) *Builder {
	if b.err != nil {
		return b
	}
	r, err := newRotator(filename, opts...)
	if err != nil {
		b.err = err
		return b
	}
	b.rotator = r
	b.output = r
	return b
}

// SetOnError 设置写日志失败时的回调。回调同步执行，panic 会被吞掉。
func (b *Builder) SetOnError(fn func(error)) *Builder {
	if b.err == nil {
		b.onError = fn
	}
	return b
}

// SetReplaceAttr 设置属性改写函数，例如脱敏或删除字段。
func (b *Builder) SetReplaceAttr(fn ReplaceAttrFunc) *Builder {
	if b.err == nil {
		b.replaceAttr = fn
	}
	return b
}

// Build 构建 Logger。
//
// 返回的 cleanup 关闭轮转文件（如有），可重复调用。
func (b *Builder) Build() (LoggerWithLevel, func() error, error) {
	if b.err != nil {
		return nil, nil, b.err
	}

	opts := &slog.HandlerOptions{
		Level:       b.levelVar,
		AddSource:   b.addSource,
		ReplaceAttr: b.replaceAttr,
	}
	var handler slog.Handler
	if b.format == "json" {
		handler = slog.NewJSONHandler(b.output, opts)
	} else {
		handler = slog.NewTextHandler(b.output, opts)
	}

	logger := &xlogger{
		handler:    handler,
		levelVar:   b.levelVar,
		addSource:  b.addSource,
		onError:    b.onError,
		errorCount: new(atomic.Uint64),
		inOnError:  new(atomic.Bool),
	}

	var once sync.Once
	rotator := b.rotator
	cleanup := func() error {
		var err error
		once.Do(func() {
			if rotator != nil {
				err = rotator.Close()
			}
		})
		return err
	}
	return logger, cleanup, nil
}
