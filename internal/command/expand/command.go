// Package expand 提供命令行占位符展开。
package expand

import (
	"github.com/urfave/cli/v3"
)

// Command 展开命令
var Command = &cli.Command{
	Name:      "expand",
	Usage:     "展开模板中的 %VAR% 占位符",
	ArgsUsage: "[template]",
	Description: "模板取自首个参数；未提供参数时读取 --file，\n" +
		"两者都未提供时读取标准输入。\n" +
		"变量优先级 (从高到低)：--var、--vars-file、环境变量 (--env 时)。",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "从文件读取模板",
		},
		&cli.StringMapFlag{
			Name:    "var",
			Aliases: []string{"D"},
			Usage:   "定义变量，格式 NAME=VALUE，可重复",
		},
		&cli.StringFlag{
			Name:  "vars-file",
			Usage: "从 YAML 文件读取变量表",
		},
		&cli.BoolFlag{
			Name:    "env",
			Aliases: []string{"e"},
			Usage:   "查询未命中时回退到进程环境变量",
		},
		&cli.BoolFlag{
			Name:  "keep-undefined",
			Usage: "未定义的占位符原样保留而不是报错",
		},
	},
	Action: action,
}
