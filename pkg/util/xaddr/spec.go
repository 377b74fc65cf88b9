package xaddr

import (
	"net"
	"net/netip"
	"strconv"
)

// 网络类型，与 net.Dial/net.Listen 的 network 参数一致。
const (
	NetworkTCP  = "tcp"
	NetworkUnix = "unix"
)

// Spec 是地址解析结果：[HostPort] 或 [UnixPath]。
//
// Spec 是封闭接口，只有本包的两个值类型实现它，可用 type switch 分派：
//
//	switch s := spec.(type) {
//	case xaddr.HostPort:
//	    fmt.Println(s.Host, s.Port)
//	case xaddr.UnixPath:
//	    fmt.Println(s.Path)
//	}
type Spec interface {
	// Network 返回 "tcp" 或 "unix"。
	Network() string
	// String 返回可直接用于 net.Dial 的地址文本。
	String() string

	isSpec()
}

// 编译时接口检查
var (
	_ Spec = HostPort{}
	_ Spec = UnixPath{}
)

// HostPort 是已校验的主机/端口对。
// Host 是 IPv4 点分地址或不带方括号、不带 zone 的 IPv6 字面量。
type HostPort struct {
	Host string
	Port uint16
}

func (HostPort) isSpec() {}

// Network 返回 "tcp"。
func (HostPort) Network() string { return NetworkTCP }

// String 返回 "host:port"，IPv6 主机带方括号（"[::1]:9000"）。
func (h HostPort) String() string {
	return net.JoinHostPort(h.Host, strconv.FormatUint(uint64(h.Port), 10))
}

// AddrPort 将 h 转换为 [netip.AddrPort]。
// IPv4 按八位段构造，因此 "010.0.0.1" 这类带前导零的主机也能转换。
// Host 不是合法 IP 字面量（例如手工构造的零值）时返回 false。
func (h HostPort) AddrPort() (netip.AddrPort, bool) {
	if octets, ok := parseIPv4(h.Host); ok {
		return netip.AddrPortFrom(netip.AddrFrom4(octets), h.Port), true
	}
	if !IsValidIPv6(h.Host) {
		return netip.AddrPort{}, false
	}
	return netip.AddrPortFrom(netip.MustParseAddr(h.Host), h.Port), true
}

// UnixPath 是文件系统 socket 路径，不做任何校验或规范化。
type UnixPath struct {
	Path string
}

func (UnixPath) isSpec() {}

// Network 返回 "unix"。
func (UnixPath) Network() string { return NetworkUnix }

// String 返回原始路径。
func (u UnixPath) String() string { return u.Path }
