package xconf

import (
	"fmt"
	"strings"

	"github.com/omeyang/xnetkit/pkg/observability/xlog"
	"github.com/omeyang/xnetkit/pkg/util/xaddr"
)

// Settings 是 xaddrctl 的配置。
//
//	parse:
//	  default_host: 0.0.0.0
//	  default_port: 8080
//	policy:
//	  allow: ["10.0.0.0/8"]
//	  allow_unix: true
//	cache:
//	  size: 1024
//	log:
//	  level: info
//	  format: text
//	  file: ""
type Settings struct {
	Parse  ParseSettings  `koanf:"parse"`
	Policy PolicySettings `koanf:"policy"`
	Cache  CacheSettings  `koanf:"cache"`
	Log    LogSettings    `koanf:"log"`
}

// ParseSettings 解析默认值。
type ParseSettings struct {
	DefaultHost string `koanf:"default_host"`
	DefaultPort int    `koanf:"default_port"`
}

// PolicySettings 允许列表，见 [xaddr.PolicyConfig]。
type PolicySettings struct {
	Allow     []string `koanf:"allow"`
	AllowUnix bool     `koanf:"allow_unix"`
}

// CacheSettings 解析缓存。
type CacheSettings struct {
	Size int `koanf:"size"`
}

// LogSettings 日志输出。File 为空时输出到 stderr。
type LogSettings struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

// DefaultSettings 返回默认配置。
func DefaultSettings() Settings {
	return Settings{
		Parse: ParseSettings{
			DefaultHost: xaddr.DefaultHost,
			DefaultPort: xaddr.DefaultPort,
		},
		Policy: PolicySettings{AllowUnix: true},
		Cache:  CacheSettings{Size: 1024},
		Log:    LogSettings{Level: "info", Format: "text"},
	}
}

// LoadSettings 将 cfg 覆盖到默认配置上并校验。cfg 为 nil 时返回默认配置。
func LoadSettings(cfg Config) (Settings, error) {
	s := DefaultSettings()
	if cfg != nil {
		if err := cfg.Unmarshal("", &s); err != nil {
			return Settings{}, err
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate 校验配置值，错误包装 [ErrInvalidSettings]。
func (s Settings) Validate() error {
	host := s.Parse.DefaultHost
	if !xaddr.IsValidIPv4(host) && !xaddr.IsValidIPv6(host) {
		return fmt.Errorf("%w: parse.default_host %q is not an IP literal", ErrInvalidSettings, host)
	}
	if s.Parse.DefaultPort < 0 || s.Parse.DefaultPort > 65535 {
		return fmt.Errorf("%w: parse.default_port %d out of range", ErrInvalidSettings, s.Parse.DefaultPort)
	}
	if s.Cache.Size <= 0 {
		return fmt.Errorf("%w: cache.size must be greater than 0", ErrInvalidSettings)
	}
	if _, err := xlog.ParseLevel(s.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidSettings, err)
	}
	switch strings.ToLower(strings.TrimSpace(s.Log.Format)) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidSettings, s.Log.Format)
	}
	return nil
}

// ParserOptions 返回对应的 [xaddr.Parser] 选项。
// 调用前应已通过 Validate。
func (s Settings) ParserOptions() []xaddr.Option {
	return []xaddr.Option{
		xaddr.WithDefaultHost(s.Parse.DefaultHost),
		xaddr.WithDefaultPort(uint16(s.Parse.DefaultPort)),
	}
}

// PolicyConfig 返回对应的 [xaddr.PolicyConfig]。
func (s Settings) PolicyConfig() xaddr.PolicyConfig {
	return xaddr.PolicyConfig{
		Allow:     s.Policy.Allow,
		AllowUnix: s.Policy.AllowUnix,
	}
}
