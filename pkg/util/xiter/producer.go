package xiter

import "iter"

// Producer 是单遍的值来源。
// Next 返回下一个值和 true；序列结束时返回零值和 false。
// 返回 false 之后不应再被调用。
type Producer[T any] interface {
	Next() (T, bool)
}

// Stopper 由需要释放资源的 Producer 实现。
// [Lookahead] 在 Producer 耗尽或自身关闭时调用一次 Stop。
type Stopper interface {
	Stop()
}

// ProducerFunc 将函数适配为 [Producer]。
type ProducerFunc[T any] func() (T, bool)

// Next 调用 f。
func (f ProducerFunc[T]) Next() (T, bool) {
	return f()
}

// FromSlice 返回按顺序产出 s 中元素的 Producer。
// 不复制 s，调用方在迭代期间不应修改它。
func FromSlice[T any](s []T) Producer[T] {
	i := 0
	return ProducerFunc[T](func() (T, bool) {
		if i >= len(s) {
			var zero T
			return zero, false
		}
		v := s[i]
		i++
		return v, true
	})
}

// SeqProducer 将 [iter.Seq] 转换为拉取式 Producer，基于 [iter.Pull]。
// 未读完就丢弃时必须调用 Stop 释放底层迭代器。
type SeqProducer[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq 返回从 seq 拉取值的 Producer。
func FromSeq[T any](seq iter.Seq[T]) *SeqProducer[T] {
	next, stop := iter.Pull(seq)
	return &SeqProducer[T]{next: next, stop: stop}
}

// Next 返回 seq 的下一个值。
func (p *SeqProducer[T]) Next() (T, bool) {
	return p.next()
}

// Stop 结束底层迭代器，可重复调用。
func (p *SeqProducer[T]) Stop() {
	p.stop()
}
