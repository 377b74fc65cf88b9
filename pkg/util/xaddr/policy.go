package xaddr

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// PolicyConfig 定义 Policy 配置。
type PolicyConfig struct {
	// Allow 允许的主机范围，每项为单 IP（"10.0.0.1"）、CIDR（"10.0.0.0/8"）
	// 或显式范围（"10.0.0.1-10.0.0.100"）。为空表示允许所有主机。
	Allow []string

	// AllowUnix 是否允许 UnixPath。
	AllowUnix bool
}

// Policy 检查解析结果是否落在允许范围内。
// 创建后不可变，可并发使用。
type Policy struct {
	set       *netipx.IPSet
	allowAll  bool
	allowUnix bool
}

// NewPolicy 根据 cfg 创建 Policy。
// 任一范围无效时返回包装了 [ErrInvalidRange] 的错误。
func NewPolicy(cfg PolicyConfig) (*Policy, error) {
	var b netipx.IPSetBuilder
	for _, s := range cfg.Allow {
		r, err := parseRange(s)
		if err != nil {
			return nil, fmt.Errorf("parse range %q: %w", s, err)
		}
		b.AddRange(r)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("%w: build IPSet: %w", ErrInvalidRange, err)
	}
	return &Policy{
		set:       set,
		allowAll:  len(cfg.Allow) == 0,
		allowUnix: cfg.AllowUnix,
	}, nil
}

// Check 返回 nil 表示 spec 被允许，否则返回包装了 [ErrNotAllowed] 的错误。
func (p *Policy) Check(spec Spec) error {
	switch s := spec.(type) {
	case UnixPath:
		if !p.allowUnix {
			return fmt.Errorf("%w: unix socket %s", ErrNotAllowed, s.Path)
		}
		return nil
	case HostPort:
		if p.allowAll {
			return nil
		}
		ap, ok := s.AddrPort()
		if !ok {
			return fmt.Errorf("%w: host %q", ErrNotAllowed, s.Host)
		}
		// IPv4-mapped IPv6 与纯 IPv4 按同一地址匹配
		if !p.set.Contains(ap.Addr().Unmap()) {
			return fmt.Errorf("%w: host %s", ErrNotAllowed, s.Host)
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported spec %T", ErrNotAllowed, spec)
	}
}

// parseRange 解析单 IP、CIDR 或 "start-end" 范围，IPv4-mapped 地址归一化为 IPv4。
func parseRange(s string) (netipx.IPRange, error) {
	s = strings.TrimSpace(s)

	// netipx.IPSet 会丢弃 zone，带 zone 的规则无法正确匹配
	if strings.Contains(s, "%") {
		return netipx.IPRange{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidRange, s)
	}

	if start, end, found := strings.Cut(s, "-"); found {
		from, err := netip.ParseAddr(strings.TrimSpace(start))
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: invalid range start: %w", ErrInvalidRange, err)
		}
		to, err := netip.ParseAddr(strings.TrimSpace(end))
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: invalid range end: %w", ErrInvalidRange, err)
		}
		r := netipx.IPRangeFrom(from.Unmap(), to.Unmap())
		if !r.IsValid() {
			return netipx.IPRange{}, fmt.Errorf("%w: %s", ErrInvalidRange, s)
		}
		return r, nil
	}

	if strings.Contains(s, "/") {
		prefix, err := netip.ParsePrefix(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: invalid CIDR: %w", ErrInvalidRange, err)
		}
		return netipx.RangeOfPrefix(prefix.Masked()), nil
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	addr = addr.Unmap()
	return netipx.IPRangeFrom(addr, addr), nil
}
