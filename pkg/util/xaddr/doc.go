// Package xaddr 解析和校验监听/连接地址字符串。
//
// xaddr 把 "127.0.0.1:9000"、"[::1]:9000"、"80"、"/tmp/app.sock" 这类自由格式的
// 地址文本转换为结构化的 [Spec]：[HostPort]（主机 + 端口）或 [UnixPath]（socket 路径）。
// 只做文本解析，不做 DNS 解析，不创建 socket。
//
// # 核心功能
//
//   - validate.go: [IsValidIPv4]、[IsValidIPv6]、[IsValidPort] 布尔校验，从不返回错误
//   - parse.go: [ParseIPAndPort]、[ParseAddress] 及可配置默认值的 [Parser]
//   - spec.go: [Spec]、[HostPort]、[UnixPath]，[HostPort.AddrPort] 转换为 [netip.AddrPort]
//   - classify.go: [HostPort.Classify] 主机地址分类（loopback/private/global 等）
//   - policy.go: 基于 [go4.org/netipx] IPSet 的允许列表 [Policy]
//   - wire.go: [WireSpec] JSON/YAML 序列化格式
//   - cache.go: 基于 golang-lru + singleflight 的解析结果缓存 [Cache]
//
// # 快速示例
//
//	hp, _ := xaddr.ParseIPAndPort("127.0.0.1:9000")
//	fmt.Println(hp.Host, hp.Port)  // 127.0.0.1 9000
//
//	spec, _ := xaddr.ParseAddress("/tmp/app.sock")
//	fmt.Println(spec.Network())    // unix
//
// # 解析规则
//
// [Parser.ParseIPAndPort] 按以下顺序尝试：
//
//  1. "[ipv6]" 或 "[ipv6]:port"
//  2. 整串是 IPv6 字面量："::1" → ("::1", 默认端口)
//  3. 按第一个 ":" 拆分：
//     ""          → (默认主机, 默认端口)
//     "1.2.3.4"   → ("1.2.3.4", 默认端口)
//     "80"        → (默认主机, 80)
//     "1.2.3.4:80" → ("1.2.3.4", 80)
//
// 带点的输入先按 IPv4 尝试，不带点的纯数字按端口处理。
// 主机名（"localhost"）、带 zone 的 IPv6（"fe80::1%eth0"）、超出范围的端口都视为无效。
//
// [ParseAddress] 在输入含 "/" 时直接返回 [UnixPath]，不检查路径是否存在。
//
// # 输入行为说明
//
// 数值按整数语义解析：
//   - 端口忽略首尾空白，允许一个 +/- 号（" 80"、"+80"、"-0" 均有效，"-1" 无效）
//   - IPv4 各段允许 +/- 号（"+1.2.3.4"），但任何空白都无效（"1.2.3. 4"）
//   - 允许前导零（"010.0.0.1"、"0080"），不接受下划线（"8_0"）
//   - 主机保留输入原文，端口归一化为数值
//   - [HostPort.AddrPort] 按八位段构造 IPv4，前导零主机同样可以转换
//
// # 错误处理
//
// 解析失败返回 [*AddressError]，携带原始输入和 [Reason]：
//
//	_, err := xaddr.ParseIPAndPort("127.0.0.1:99999")
//	if errors.Is(err, xaddr.ErrInvalidAddress) {
//	    var ae *xaddr.AddressError
//	    errors.As(err, &ae)
//	    fmt.Println(ae.Reason) // invalid_port
//	}
package xaddr
