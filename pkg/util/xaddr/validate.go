package xaddr

import (
	"net/netip"
	"strconv"
	"strings"
)

// IsValidIPv4 报告 s 是否为点分四段的 IPv4 地址。
// 每段是可带一个 +/- 号的十进制整数，取值 [0, 255]，允许前导零（"010" 视为 10，
// "+1"、"-0" 也合法）。任何位置含空白或非数字字符的输入返回 false。
func IsValidIPv4(s string) bool {
	_, ok := parseIPv4(s)
	return ok
}

// parseIPv4 按 IsValidIPv4 的规则解析 s，返回四个八位段。
func parseIPv4(s string) ([4]byte, bool) {
	var octets [4]byte
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return octets, false
	}
	for i, p := range parts {
		v, ok := parseInt(p, 255)
		if !ok {
			return octets, false
		}
		octets[i] = byte(v)
	}
	return octets, true
}

// IsValidIPv6 报告 s 是否为 IPv6 字面量（含 IPv4-mapped 形式，如 "::ffff:1.2.3.4"）。
// 带 zone（"fe80::1%eth0"）或方括号的输入返回 false，纯 IPv4 文本也返回 false。
func IsValidIPv6(s string) bool {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return false
	}
	return addr.Is6() && addr.Zone() == ""
}

// IsValidPort 报告 s 是否为 [0, 65535] 内的整数。
// 忽略首尾空白，允许一个 +/- 号（" 80"、"+80"、"-0" 合法）。
func IsValidPort(s string) bool {
	_, ok := parsePort(s)
	return ok
}

func parsePort(s string) (uint16, bool) {
	v, ok := parseInt(strings.TrimSpace(s), 65535)
	return uint16(v), ok
}

// parseInt 解析可带符号的十进制整数，要求结果落在 [0, limit]。
// strconv.ParseInt 不接受空白，base 10 下也不接受下划线。
func parseInt(s string, limit int64) (int64, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 || v > limit {
		return 0, false
	}
	return v, true
}
