// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - YAML/JSON，按 [DefaultPaths] 顺序查找
//  3. 环境变量 - STREXP_ 前缀，见 envBindings
//  4. CLI flags - 仅当用户显式设置时覆盖
package config

import (
	"time"
)

// Config 应用配置。
type Config struct {
	Server ServerConfig `json:"server" desc:"服务端配置"`
	Expand ExpandConfig `json:"expand" desc:"展开配置"`
}

// ServerConfig 服务端配置。
type ServerConfig struct {
	Addr     string        `json:"addr" desc:"服务器监听地址"`
	Timeout  time.Duration `json:"timeout" desc:"HTTP 读写超时"`
	Idletime time.Duration `json:"idletime" desc:"HTTP 空闲超时"`
}

// ExpandConfig 展开配置。
type ExpandConfig struct {
	Env  bool              `json:"env" desc:"查询未命中时回退到进程环境变量"`
	Vars map[string]string `json:"vars" desc:"预定义变量表"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:     ":40828",
			Timeout:  15 * time.Second,
			Idletime: 60 * time.Second,
		},
		Expand: ExpandConfig{
			Env:  false,
			Vars: map[string]string{},
		},
	}
}
