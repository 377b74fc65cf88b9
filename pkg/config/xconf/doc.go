// Package xconf 加载 YAML/JSON 配置文件，基于 koanf 实现。
//
// # 加载
//
//   - [New]: 从文件加载，格式由扩展名决定（.yaml/.yml/.json）
//   - [NewFromBytes]: 从字节数据加载，需显式指定 [Format]
//   - [Config.Client] 暴露底层 koanf 实例，[Config.Unmarshal] 反序列化到结构体
//
// Config 加载后不再变化；需要新配置时重新调用 [New]。
//
// # Settings
//
// [Settings] 是 xaddrctl 使用的类型化配置（解析默认值、允许列表、缓存、日志）。
// [LoadSettings] 以 [DefaultSettings] 为底，覆盖配置文件中出现的键并校验：
//
//	cfg, err := xconf.New("xaddrctl.yaml")
//	if err != nil {
//	    return err
//	}
//	s, err := xconf.LoadSettings(cfg)
//	if err != nil {
//	    return err
//	}
//	parser, err := xaddr.NewParser(s.ParserOptions()...)
//
// Unmarshal 使用 mapstructure，允许弱类型转换（字符串 "8080" 可转为 int）。
package xconf
