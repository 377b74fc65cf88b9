package xaddr

import "net/netip"

// Version 表示 IP 协议版本。
type Version uint8

const (
	// V0 表示无效或未知的 IP 版本。
	V0 Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// addrVersion 返回 addr 的 IP 版本，IPv4-mapped IPv6 视为 V4。
func addrVersion(addr netip.Addr) Version {
	if addr.Is4() || addr.Is4In6() {
		return V4
	}
	if addr.IsValid() {
		return V6
	}
	return V0
}

// Classification 描述 HostPort 主机地址的类别。
// 各标志不互斥，例如 10.0.0.1 同时满足 IsPrivate 和 IsGlobalUnicast。
type Classification struct {
	Version         Version
	IsLoopback      bool
	IsPrivate       bool
	IsUnspecified   bool
	IsLinkLocal     bool
	IsMulticast     bool
	IsGlobalUnicast bool
}

// Classify 返回 h 主机地址的分类。Host 无法转换为 IP 时返回零值。
func (h HostPort) Classify() Classification {
	ap, ok := h.AddrPort()
	if !ok {
		return Classification{}
	}
	addr := ap.Addr()
	version := addrVersion(addr)
	// IPv4-mapped IPv6 按对应的 IPv4 地址分类
	addr = addr.Unmap()
	return Classification{
		Version:         version,
		IsLoopback:      addr.IsLoopback(),
		IsPrivate:       addr.IsPrivate(),
		IsUnspecified:   addr.IsUnspecified(),
		IsLinkLocal:     addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast(),
		IsMulticast:     addr.IsMulticast(),
		IsGlobalUnicast: addr.IsGlobalUnicast(),
	}
}

// String 按从特殊到一般的顺序返回最具体的类别标签。
func (c Classification) String() string {
	switch {
	case c.Version == V0:
		return "unknown"
	case c.IsUnspecified:
		return "unspecified"
	case c.IsLoopback:
		return "loopback"
	case c.IsLinkLocal:
		return "link-local"
	case c.IsMulticast:
		return "multicast"
	case c.IsPrivate:
		return "private"
	case c.IsGlobalUnicast:
		return "global"
	default:
		return "unknown"
	}
}
