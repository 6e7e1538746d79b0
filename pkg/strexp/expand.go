package strexp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// 展开阶段的错误哨兵，可用 [errors.Is] 判断。
var (
	// ErrNotDefined 查询未命中请求的变量名。
	ErrNotDefined = errors.New("strexp: variable not defined")

	// ErrWrite 输出目标写入失败（仅 [ExpandTo] 会产生）。
	ErrWrite = errors.New("strexp: write to output failed")
)

// ═══════════════════════════════════════════════════════════════════════════
// 查询能力
// ═══════════════════════════════════════════════════════════════════════════

// Lookup 变量查询函数：按名称返回值，第二个返回值表示是否命中。
type Lookup func(name string) (string, bool)

// LookupEnv 以进程环境变量为数据源的查询，未设置视为未命中。
var LookupEnv Lookup = os.LookupEnv

// LookupMap 以固定映射为数据源构造查询。
func LookupMap(vars map[string]string) Lookup {
	return func(name string) (string, bool) {
		val, ok := vars[name]

		return val, ok
	}
}

// LookupFirst 将多个查询按顺序分层，先命中者生效。
//
// 常见用法是 CLI 变量覆盖文件变量、再回退到环境变量：
//
//	lookup := strexp.LookupFirst(
//	    strexp.LookupMap(cliVars),
//	    strexp.LookupMap(fileVars),
//	    strexp.LookupEnv,
//	)
func LookupFirst(lookups ...Lookup) Lookup {
	return func(name string) (string, bool) {
		for _, lookup := range lookups {
			if val, ok := lookup(name); ok {
				return val, ok
			}
		}

		return "", false
	}
}

// LookupKeep 总是命中并原样保留占位符文本（含定界符）。
//
// 作为 [LookupFirst] 的末位兜底，可以让未定义的占位符
// 原样穿透而不是让整次展开失败。
// 展开结果不会被二次扫描，因此保留的文本不会再被替换。
var LookupKeep Lookup = func(name string) (string, bool) {
	return string(Delim) + name + string(Delim), true
}

// ═══════════════════════════════════════════════════════════════════════════
// 展开
// ═══════════════════════════════════════════════════════════════════════════

// Expand 展开 src 中的全部占位符并返回结果字符串。
//
// 字面量片段原样拼接，变量片段以 lookup 的返回值替换；
// 替换值按原样插入，不做递归展开。
// 任何扫描错误或查询未命中都会使整次展开失败，不返回部分结果。
func Expand(src string, lookup Lookup) (string, error) {
	var buf strings.Builder
	buf.Grow(len(src)) // 展开只增不减，源长度是容量下界
	if err := expandInto(&buf, src, lookup); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// ExpandEnv 是 [Expand] 的便捷版本，以进程环境变量作为查询数据源。
func ExpandEnv(src string) (string, error) {
	return Expand(src, LookupEnv)
}

// ExpandTo 流式展开 src 并写入 w。
//
// 与 [Expand] 语义一致，但写入随扫描进行；
// 出错时 w 可能已收到部分输出，写入失败包装为 [ErrWrite]。
func ExpandTo(w io.Writer, src string, lookup Lookup) error {
	return expandInto(w, src, lookup)
}

func expandInto(w io.Writer, src string, lookup Lookup) error {
	sc := NewScanner(src)
	for sc.Scan() {
		seg := sc.Segment()
		text := seg.Text
		if seg.Kind == SegmentVariable {
			val, ok := lookup(seg.Text)
			if !ok {
				return fmt.Errorf("%w: %q", ErrNotDefined, seg.Text)
			}
			text = val
		}

		if _, err := io.WriteString(w, text); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}

	return sc.Err()
}
