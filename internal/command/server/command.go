// Package server 提供 HTTP 展开服务命令。
package server

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260828-go-pkg-strexp/internal/command"
)

// Command 服务器命令
var Command = &cli.Command{
	Name:   "server",
	Usage:  "启动 HTTP 展开服务",
	Action: action,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "server-addr",
			Aliases: []string{"a"},
			Value:   command.Defaults.Server.Addr,
			Usage:   "服务器监听地址",
		},
		&cli.DurationFlag{
			Name:  "server-timeout",
			Value: command.Defaults.Server.Timeout,
			Usage: "HTTP 读写超时",
		},
		&cli.DurationFlag{
			Name:  "server-idletime",
			Value: command.Defaults.Server.Idletime,
			Usage: "HTTP 空闲超时",
		},
		&cli.BoolFlag{
			Name:  "expand-env",
			Value: command.Defaults.Expand.Env,
			Usage: "查询未命中时回退到进程环境变量",
		},
		&cli.StringMapFlag{
			Name:  "expand-vars",
			Usage: "预定义变量，格式 NAME=VALUE，可重复",
		},
	},
}
