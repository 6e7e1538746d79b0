package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/urfave/cli/v3"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260828-go-pkg-strexp/pkg/strexp"
)

// EnvPrefix 环境变量前缀。
const EnvPrefix = "STREXP_"

// envBindings 环境变量到配置 key 的显式映射。
//
// 配置项固定且数量很少，用显式表比反射生成更直观。
var envBindings = map[string]string{
	EnvPrefix + "SERVER_ADDR":     "server.addr",
	EnvPrefix + "SERVER_TIMEOUT":  "server.timeout",
	EnvPrefix + "SERVER_IDLETIME": "server.idletime",
	EnvPrefix + "EXPAND_ENV":      "expand.env",
}

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.strexp.yaml - 当前目录应用配置
//  2. ~/.strexp.yaml - 用户主目录配置
//  3. /etc/strexp/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths() []string {
	paths := []string{".strexp.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".strexp.yaml"))
	}
	paths = append(paths, "/etc/strexp/config.yaml", "config.yaml", "config/config.yaml")

	return paths
}

// Load 读取配置并按优先级合并。
//
// paths 为空时使用 [DefaultPaths]；按顺序查找，命中首个文件即停止。
// 配置文件正文会先经过 %VAR% 展开（环境变量数据源，
// 未定义的占位符原样保留），再按扩展名以 YAML 或 JSON 解析。
func Load(cmd *cli.Command, paths ...string) (*Config, error) {
	raw, err := toMap(DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("encode default config: %w", err)
	}

	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	for _, path := range paths {
		content, readErr := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if readErr != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		expanded, expandErr := strexp.Expand(string(content), strexp.LookupFirst(strexp.LookupEnv, strexp.LookupKeep))
		if expandErr != nil {
			return nil, fmt.Errorf("expand placeholders in %s: %w", path, expandErr)
		}

		fileMap, parseErr := parseConfigBytes(path, []byte(expanded))
		if parseErr != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, parseErr)
		}
		mergeMaps(raw, fileMap)

		slog.Debug("Loaded config from file", "path", path)

		break
	}

	for envKey, configPath := range envBindings {
		if val := os.Getenv(envKey); val != "" {
			setByPath(raw, configPath, val)
			slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
		}
	}

	if cmd != nil {
		applyFlags(cmd, raw)
	}

	var cfg Config
	if err := decodeConfigMap(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad(cmd *cli.Command, paths ...string) *Config {
	cfg, err := Load(cmd, paths...)
	if err != nil {
		panic(fmt.Sprintf("config: failed to load config: %v", err))
	}

	return cfg
}

// applyFlags 将用户显式设置的 CLI flags 写入配置 map（最高优先级）。
//
// flag 名与配置 key 的映射关系："." 替换为 "-"。
func applyFlags(cmd *cli.Command, raw map[string]any) {
	if cmd.IsSet("server-addr") {
		setByPath(raw, "server.addr", cmd.String("server-addr"))
	}
	if cmd.IsSet("server-timeout") {
		setByPath(raw, "server.timeout", cmd.Duration("server-timeout"))
	}
	if cmd.IsSet("server-idletime") {
		setByPath(raw, "server.idletime", cmd.Duration("server-idletime"))
	}
	if cmd.IsSet("expand-env") {
		setByPath(raw, "expand.env", cmd.Bool("expand-env"))
	}
	if cmd.IsSet("expand-vars") {
		setByPath(raw, "expand.vars", cmd.StringMap("expand-vars"))
	}
}

// toMap 将配置结构体编码为嵌套 map，key 取 json tag。
func toMap(cfg Config) (map[string]any, error) {
	out := map[string]any{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &out,
		TagName: "json",
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}

	return out, nil
}

func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	if raw == nil {
		return map[string]any{}, nil
	}
	configMap, ok := normalizeMapKeys(raw).(map[string]any)
	if !ok {
		return nil, errors.New("config root must be object")
	}

	return configMap, nil
}

// normalizeMapKeys 将 YAML 可能产出的 map[any]any 归一化为 map[string]any。
func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalizeMapKeys(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)

				continue
			}
		}

		dst[key] = value
	}
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

func decodeConfigMap(data map[string]any, out *Config) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
