package xaddr

import "fmt"

// WireSpec 是 Spec 的序列化格式，使用 JSON/YAML 标签。
//
//	{"network":"tcp","host":"127.0.0.1","port":9000}
//	{"network":"unix","path":"/tmp/app.sock"}
//
// 反序列化得到的 WireSpec 未经校验，使用 [WireSpec.ToSpec] 还原并校验。
type WireSpec struct {
	Network string `json:"network" yaml:"network"`
	Host    string `json:"host,omitempty" yaml:"host,omitempty"`
	Port    uint16 `json:"port,omitempty" yaml:"port,omitempty"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
}

// WireSpecFrom 从 spec 创建 WireSpec。spec 为 nil 时返回零值。
func WireSpecFrom(spec Spec) WireSpec {
	switch s := spec.(type) {
	case HostPort:
		return WireSpec{Network: NetworkTCP, Host: s.Host, Port: s.Port}
	case UnixPath:
		return WireSpec{Network: NetworkUnix, Path: s.Path}
	default:
		return WireSpec{}
	}
}

// ToSpec 将 w 还原为 Spec。
// tcp 的 Host 必须通过 IPv4/IPv6 校验，unix 的 Path 必须非空且含 "/"，
// 与 [ParseAddress] 的产出保持一致。
func (w WireSpec) ToSpec() (Spec, error) {
	switch w.Network {
	case NetworkTCP:
		if w.Path != "" {
			return nil, fmt.Errorf("%w: tcp spec with path %q", ErrInvalidWire, w.Path)
		}
		if !IsValidIPv4(w.Host) && !IsValidIPv6(w.Host) {
			return nil, fmt.Errorf("%w: invalid host %q", ErrInvalidWire, w.Host)
		}
		return HostPort{Host: w.Host, Port: w.Port}, nil
	case NetworkUnix:
		if w.Host != "" || w.Port != 0 {
			return nil, fmt.Errorf("%w: unix spec with host/port", ErrInvalidWire)
		}
		if w.Path == "" {
			return nil, fmt.Errorf("%w: empty unix path", ErrInvalidWire)
		}
		spec, err := ParseAddress(w.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidWire, err)
		}
		if _, ok := spec.(UnixPath); !ok {
			return nil, fmt.Errorf("%w: path %q is not a socket path", ErrInvalidWire, w.Path)
		}
		return spec, nil
	default:
		return nil, fmt.Errorf("%w: unknown network %q", ErrInvalidWire, w.Network)
	}
}
