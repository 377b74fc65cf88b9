package xaddr

import (
	"fmt"
	"strings"
)

// 默认主机与端口。
const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 8080
)

// Option 定义 Parser 可选配置函数类型。
type Option func(*options)

type options struct {
	host string
	port uint16
}

// WithDefaultHost 设置输入未给出主机时使用的主机。
// 必须是合法的 IPv4 或 IPv6 字面量，否则 [NewParser] 返回 [ErrInvalidDefault]。
func WithDefaultHost(host string) Option {
	return func(o *options) {
		o.host = host
	}
}

// WithDefaultPort 设置输入未给出端口时使用的端口。
func WithDefaultPort(port uint16) Option {
	return func(o *options) {
		o.port = port
	}
}

// Parser 按固定默认值解析地址字符串。
// 零值不可用，通过 [NewParser] 创建。Parser 创建后不可变，可并发使用。
type Parser struct {
	defaultHost string
	defaultPort uint16
}

// NewParser 创建 Parser。未设置的默认值为 "0.0.0.0" 和 8080。
func NewParser(opts ...Option) (*Parser, error) {
	o := &options{host: DefaultHost, port: DefaultPort}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if !IsValidIPv4(o.host) && !IsValidIPv6(o.host) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDefault, o.host)
	}
	return &Parser{defaultHost: o.host, defaultPort: o.port}, nil
}

// DefaultHost 返回 p 的默认主机。
func (p *Parser) DefaultHost() string { return p.defaultHost }

// DefaultPort 返回 p 的默认端口。
func (p *Parser) DefaultPort() uint16 { return p.defaultPort }

var defaultParser = &Parser{defaultHost: DefaultHost, defaultPort: DefaultPort}

// ParseIPAndPort 使用默认值（"0.0.0.0", 8080）解析 s，见 [Parser.ParseIPAndPort]。
func ParseIPAndPort(s string) (HostPort, error) {
	return defaultParser.ParseIPAndPort(s)
}

// ParseAddress 使用默认值解析 s，见 [Parser.ParseAddress]。
func ParseAddress(s string) (Spec, error) {
	return defaultParser.ParseAddress(s)
}

// MustParseAddress 与 ParseAddress 相同，但失败时 panic。
// 仅用于测试和常量初始化。
func MustParseAddress(s string) Spec {
	spec, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return spec
}

// ParseAddress 解析 s 为 [Spec]。
// s 含 "/" 时原样返回 [UnixPath]（不检查文件是否存在，也不规范化路径），
// 否则按 [Parser.ParseIPAndPort] 解析为 [HostPort]。
func (p *Parser) ParseAddress(s string) (Spec, error) {
	if strings.Contains(s, "/") {
		return UnixPath{Path: s}, nil
	}
	hp, err := p.ParseIPAndPort(s)
	if err != nil {
		return nil, err
	}
	return hp, nil
}

// ParseIPAndPort 解析 s 为主机/端口对。支持的形式按判断顺序：
//   - "[ipv6]" 或 "[ipv6]:port"
//   - 裸 IPv6："::1"
//   - ""：默认主机和默认端口
//   - "ipv4"：默认端口
//   - "port"：默认主机
//   - "ipv4:port"
//
// 不做 DNS 解析，主机名（如 "localhost"）视为无效输入。
// 失败时返回 [*AddressError]，errors.Is(err, ErrInvalidAddress) 成立。
func (p *Parser) ParseIPAndPort(s string) (HostPort, error) {
	if host, port, ok := cutBracketed(s); ok {
		if !IsValidIPv6(host) {
			return HostPort{}, invalid(s, ReasonInvalidIPv6)
		}
		if port == "" {
			return HostPort{Host: host, Port: p.defaultPort}, nil
		}
		n, ok := parsePort(port)
		if !ok {
			return HostPort{}, invalid(s, ReasonInvalidPort)
		}
		return HostPort{Host: host, Port: n}, nil
	}

	if IsValidIPv6(s) {
		return HostPort{Host: s, Port: p.defaultPort}, nil
	}

	host, port, found := strings.Cut(s, ":")
	if !found {
		switch {
		case s == "":
			return HostPort{Host: p.defaultHost, Port: p.defaultPort}, nil
		case IsValidIPv4(s):
			return HostPort{Host: s, Port: p.defaultPort}, nil
		}
		// 不含点的纯数字视为端口
		if n, ok := parsePort(s); ok {
			return HostPort{Host: p.defaultHost, Port: n}, nil
		}
		return HostPort{}, invalid(s, ReasonMalformed)
	}

	if !IsValidIPv4(host) {
		return HostPort{}, invalid(s, ReasonInvalidHost)
	}
	n, ok := parsePort(port)
	if !ok {
		return HostPort{}, invalid(s, ReasonInvalidPort)
	}
	return HostPort{Host: host, Port: n}, nil
}

// cutBracketed 匹配 "[addr]" 或 "[addr]:digits"。
// addr 非空且不含 "]"；端口部分只检查是否为数字串，取值范围由调用方校验。
func cutBracketed(s string) (host, port string, ok bool) {
	rest, found := strings.CutPrefix(s, "[")
	if !found {
		return "", "", false
	}
	host, rest, found = strings.Cut(rest, "]")
	if !found || host == "" {
		return "", "", false
	}
	if rest == "" {
		return host, "", true
	}
	port, found = strings.CutPrefix(rest, ":")
	if !found || port == "" || !isDigits(port) {
		return "", "", false
	}
	return host, port, true
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
