package expand

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260828-go-pkg-strexp/pkg/strexp"
)

func action(ctx context.Context, cmd *cli.Command) error {
	src, err := readTemplate(cmd)
	if err != nil {
		return err
	}

	lookup, err := buildLookup(cmd)
	if err != nil {
		return err
	}

	result, err := strexp.Expand(src, lookup)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, result)

	return err
}

// readTemplate 按参数 → --file → 标准输入的顺序取得模板。
func readTemplate(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		return cmd.Args().First(), nil
	}

	if path := cmd.String("file"); path != "" {
		content, err := os.ReadFile(path) //nolint:gosec // path is user supplied by design
		if err != nil {
			return "", fmt.Errorf("read template file: %w", err)
		}

		return string(content), nil
	}

	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read template from stdin: %w", err)
	}

	return string(content), nil
}

// buildLookup 组装分层查询：--var > --vars-file > 环境变量 > 原样保留。
func buildLookup(cmd *cli.Command) (strexp.Lookup, error) {
	var lookups []strexp.Lookup

	if vars := cmd.StringMap("var"); len(vars) > 0 {
		lookups = append(lookups, strexp.LookupMap(vars))
	}

	if path := cmd.String("vars-file"); path != "" {
		content, err := os.ReadFile(path) //nolint:gosec // path is user supplied by design
		if err != nil {
			return nil, fmt.Errorf("read vars file: %w", err)
		}

		fileVars := map[string]string{}
		if err := yamlv3.Unmarshal(content, &fileVars); err != nil {
			return nil, fmt.Errorf("parse vars file %s: %w", path, err)
		}
		lookups = append(lookups, strexp.LookupMap(fileVars))
	}

	if cmd.Bool("env") {
		lookups = append(lookups, strexp.LookupEnv)
	}

	if cmd.Bool("keep-undefined") {
		lookups = append(lookups, strexp.LookupKeep)
	}

	return strexp.LookupFirst(lookups...), nil
}
