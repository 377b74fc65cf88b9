package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// parsers 按格式选择 koanf 解析器。
var parsers = map[Format]func() koanf.Parser{
	FormatYAML: func() koanf.Parser { return yaml.Parser() },
	FormatJSON: func() koanf.Parser { return json.Parser() },
}

// extensions 文件扩展名到格式的映射（小写）。
var extensions = map[string]Format{
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".json": FormatJSON,
}

// snapshot 是加载完成后不再修改的配置，可并发读取。
type snapshot struct {
	k      *koanf.Koanf
	path   string
	format Format
	tag    string
}

// New 读取 path 并按扩展名（.yaml/.yml/.json）解析。空文件得到空配置。
func New(path string, opts ...Option) (Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return load(path, data, format, opts)
}

// NewFromBytes 按 format 解析 data。空数据得到空配置，Unmarshal 不改变目标。
func NewFromBytes(data []byte, format Format, opts ...Option) (Config, error) {
	if _, ok := parsers[format]; !ok {
		return nil, ErrUnsupportedFormat
	}
	return load("", data, format, opts)
}

func load(path string, data []byte, format Format, opts []Option) (*snapshot, error) {
	o := applyOptions(opts)
	k := koanf.New(o.Delim)
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parsers[format]()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}
	return &snapshot{k: k, path: path, format: format, tag: o.Tag}, nil
}

func (s *snapshot) Client() *koanf.Koanf { return s.k }

func (s *snapshot) Unmarshal(path string, target any) error {
	err := s.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{Tag: s.tag})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

func (s *snapshot) Path() string { return s.path }

func (s *snapshot) Format() Format { return s.format }

func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
}
