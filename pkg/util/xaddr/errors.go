package xaddr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress 表示地址字符串无法解析为合法的主机/端口组合。
	// 所有解析失败都返回包装了它的 [*AddressError]。
	ErrInvalidAddress = errors.New("xaddr: invalid address")

	// ErrInvalidDefault 表示 Parser 的默认主机不是合法的 IPv4/IPv6 字面量。
	ErrInvalidDefault = errors.New("xaddr: invalid default host")

	// ErrNotAllowed 表示地址不在 Policy 允许的范围内。
	ErrNotAllowed = errors.New("xaddr: address not allowed")

	// ErrInvalidRange 表示 Policy 的允许范围格式无效。
	ErrInvalidRange = errors.New("xaddr: invalid IP range")

	// ErrInvalidWire 表示 WireSpec 无法还原为合法的 Spec。
	ErrInvalidWire = errors.New("xaddr: invalid wire spec")

	// ErrInvalidCacheSize 表示缓存容量配置无效。
	ErrInvalidCacheSize = errors.New("xaddr: cache size must be greater than 0")
)

// Reason 标识解析失败的原因。
type Reason string

// 解析失败原因。
const (
	ReasonMalformed   Reason = "malformed"
	ReasonInvalidHost Reason = "invalid_host"
	ReasonInvalidPort Reason = "invalid_port"
	ReasonInvalidIPv6 Reason = "invalid_ipv6"
)

// AddressError 描述一次解析失败，携带原始输入和失败原因。
//
// errors.Is(err, ErrInvalidAddress) 对所有 AddressError 成立。
type AddressError struct {
	Input  string
	Reason Reason
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("xaddr: invalid address %q: %s", e.Input, e.Reason)
}

// Unwrap 返回 [ErrInvalidAddress]。
func (e *AddressError) Unwrap() error {
	return ErrInvalidAddress
}

func invalid(input string, reason Reason) error {
	return &AddressError{Input: input, Reason: reason}
}
