package xlog

import "log/slog"

// 常用属性 key。
const (
	KeyError     = "error"
	KeyInput     = "input"
	KeyNetwork   = "network"
	KeyIndex     = "index"
	KeyCount     = "count"
	KeyComponent = "component"
)

// Err 返回错误属性。err 为 nil 时返回空属性，slog 会忽略它。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Input 原始输入，例如待解析的地址字符串。
func Input(s string) slog.Attr {
	return slog.String(KeyInput, s)
}

// Network 地址类别（tcp/unix）。
func Network(n string) slog.Attr {
	return slog.String(KeyNetwork, n)
}

// Index 序列中的位置（从 0 开始）。
func Index(i int) slog.Attr {
	return slog.Int(KeyIndex, i)
}

// Count 计数。
func Count(n int) slog.Attr {
	return slog.Int(KeyCount, n)
}

// Component 日志来源组件。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}
