package xiter

import "errors"

var (
	// ErrOutOfOrder 表示按索引访问了已经越过的位置。
	ErrOutOfOrder = errors.New("xiter: index already passed")

	// ErrIndexExhausted 表示按索引访问时序列在到达该位置前已耗尽。
	ErrIndexExhausted = errors.New("xiter: index out of range")
)
