package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260828-go-pkg-strexp/internal/command/expand"
	"github.com/lwmacct/260828-go-pkg-strexp/internal/command/server"
)

// Version 构建版本，由 -ldflags 注入。
var Version = "dev"

func main() {
	app := &cli.Command{
		Name:    "strexp",
		Usage:   "%VAR% 占位符展开工具",
		Version: Version,
		Commands: []*cli.Command{
			expand.Command,
			server.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
