// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xaddr: 监听地址解析与校验，host:port / [ipv6]:port / unix socket 路径，
//     附带基于 go4.org/netipx 的允许列表和基于 golang-lru 的解析缓存
//   - xiter: 带首元素预取的单遍序列（Lookahead），支持只进的按位置访问
package util
