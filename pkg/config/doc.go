// Package config 提供配置相关的子包。
//
// 子包列表：
//   - xconf: 基于 koanf 的 YAML/JSON 配置加载，以及 xaddrctl 的类型化配置
package config
