package xiter

import (
	"fmt"
	"iter"
)

// Lookahead 包装单遍 Producer，支持不消费地查看首元素以及只能向前的按索引访问。
//
// 逻辑序列 = 已缓存的首元素（如有）+ Producer 剩余元素。
// First/NonEmpty 最多从 Producer 预取一个元素并缓存，之后任何读取路径
// （Next/All/Enumerate/At）都先取缓存，因此探测不会让元素重复或丢失。
//
// Lookahead 不是并发安全的，与普通游标一样只能由单个使用者读取。
type Lookahead[T any] struct {
	p        Producer[T]
	head     T
	hasHead  bool
	consumed int
	done     bool
}

// New 返回包装 p 的 Lookahead，Lookahead 独占 p。p 为 nil 时视为空序列。
func New[T any](p Producer[T]) *Lookahead[T] {
	l := &Lookahead[T]{p: p}
	if p == nil {
		l.done = true
	}
	return l
}

// Of 返回包装 seq 的 Lookahead。
// 未读完就丢弃时应调用 [Lookahead.Close] 释放底层迭代器。
func Of[T any](seq iter.Seq[T]) *Lookahead[T] {
	return New[T](FromSeq(seq))
}

// OfSlice 返回按顺序产出 s 中元素的 Lookahead。
func OfSlice[T any](s []T) *Lookahead[T] {
	return New(FromSlice(s))
}

// pull 从 Producer 取一个元素。Producer 返回 false 后不会再被调用。
func (l *Lookahead[T]) pull() (T, bool) {
	if l.done {
		var zero T
		return zero, false
	}
	v, ok := l.p.Next()
	if !ok {
		l.finish()
		return v, false
	}
	return v, true
}

// finish 标记耗尽并停止 Producer。
func (l *Lookahead[T]) finish() {
	l.done = true
	if l.p == nil {
		return
	}
	if s, ok := l.p.(Stopper); ok {
		s.Stop()
	}
	l.p = nil
}

// peek 返回下一个未消费元素但不消费它。
func (l *Lookahead[T]) peek() (T, bool) {
	if l.hasHead {
		return l.head, true
	}
	v, ok := l.pull()
	if !ok {
		return v, false
	}
	l.head, l.hasHead = v, true
	return v, true
}

// take 消费并返回下一个元素，缓存的首元素优先。
func (l *Lookahead[T]) take() (T, bool) {
	if l.hasHead {
		v := l.head
		var zero T
		l.head, l.hasHead = zero, false
		l.consumed++
		return v, true
	}
	v, ok := l.pull()
	if !ok {
		return v, false
	}
	l.consumed++
	return v, true
}

// First 返回下一个未消费的元素，不消费它。
// 连续调用返回同一个元素；序列已耗尽时返回零值和 false。
func (l *Lookahead[T]) First() (T, bool) {
	return l.peek()
}

// FirstOr 与 First 相同，但序列已耗尽时返回 def。
func (l *Lookahead[T]) FirstOr(def T) T {
	if v, ok := l.peek(); ok {
		return v
	}
	return def
}

// NonEmpty 报告是否还有未消费的元素，不消费它。
func (l *Lookahead[T]) NonEmpty() bool {
	_, ok := l.peek()
	return ok
}

// Next 消费并返回下一个元素。序列已耗尽时返回零值和 false。
func (l *Lookahead[T]) Next() (T, bool) {
	return l.take()
}

// All 返回逐个消费剩余元素的迭代器。
// 提前 break 时，尚未产出的元素仍留在 Lookahead 中。
//
// 示例：
//
//	for v := range l.All() {
//	    fmt.Println(v)
//	}
func (l *Lookahead[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := l.take()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Enumerate 与 All 相同，额外产出元素在逻辑序列中的位置（从 0 开始）。
func (l *Lookahead[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for {
			i := l.consumed
			v, ok := l.take()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// At 返回逻辑序列中位置 i 的元素，并丢弃它之前所有未消费的元素。
// 之后 Consumed() == i+1。
//
// i 小于 Consumed() 时返回包装了 [ErrOutOfOrder] 的错误（不能回退）；
// 序列在到达 i 之前耗尽时返回包装了 [ErrIndexExhausted] 的错误。
func (l *Lookahead[T]) At(i int) (T, error) {
	var zero T
	if i < l.consumed {
		return zero, fmt.Errorf("%w: index %d, consumed %d", ErrOutOfOrder, i, l.consumed)
	}
	for l.consumed < i {
		if _, ok := l.take(); !ok {
			return zero, fmt.Errorf("%w: index %d, consumed %d", ErrIndexExhausted, i, l.consumed)
		}
	}
	v, ok := l.take()
	if !ok {
		return zero, fmt.Errorf("%w: index %d, consumed %d", ErrIndexExhausted, i, l.consumed)
	}
	return v, nil
}

// Consumed 返回已消费的元素数，即下一个元素的逻辑位置。
// First/NonEmpty 预取的元素在被消费前不计入。
func (l *Lookahead[T]) Consumed() int {
	return l.consumed
}

// Close 停止底层 Producer 并丢弃缓存的首元素，可重复调用。
// 关闭后 Lookahead 表现为已耗尽的序列。
func (l *Lookahead[T]) Close() {
	var zero T
	l.head, l.hasHead = zero, false
	l.finish()
}
