// Package xiter 提供可预读的单遍序列包装 [Lookahead]。
//
// [Lookahead] 包装任意有限或无限的 [Producer]，在不影响后续消费者的前提下
// 支持三种访问方式：
//
//   - 预读：[Lookahead.First]、[Lookahead.FirstOr]、[Lookahead.NonEmpty]
//   - 顺序消费：[Lookahead.Next]、[Lookahead.All]、[Lookahead.Enumerate]
//   - 只能向前的按索引访问：[Lookahead.At]
//
// # 快速示例
//
//	l := xiter.OfSlice([]int{0, 1, 2})
//	if l.NonEmpty() {                 // 预取 0 并缓存
//	    for v := range l.All() {      // 0 1 2，0 不重复也不丢失
//	        fmt.Println(v)
//	    }
//	}
//
// # Producer
//
// [Producer] 通过 Next() (T, bool) 的第二个返回值显式报告结束。
// [FromSlice]、[ProducerFunc]、[FromSeq]（基于 [iter.Pull]）提供常用适配。
// 实现了 [Stopper] 的 Producer 会在耗尽或 [Lookahead.Close] 时被停止一次，
// 之后不再被调用。
//
// # 按索引访问
//
// [Lookahead.Consumed] 是已消费元素数，只增不减。
// At(i) 在 i < Consumed() 时返回 [ErrOutOfOrder]；
// 在序列到达 i 之前耗尽时返回 [ErrIndexExhausted]。
//
// # 并发
//
// Lookahead 与普通游标一样只能由单个使用者读取，不是并发安全的。
package xiter
