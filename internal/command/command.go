// Package command 提供展开和服务端的命令行功能。
package command

import "github.com/lwmacct/260828-go-pkg-strexp/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
