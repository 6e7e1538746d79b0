// Package strexp 提供 %VAR% 风格占位符的扫描与展开。
//
// 该包只做字符串层面的替换，适合命令行模板、配置片段等轻量场景。
// 不执行命令、不引入模板引擎，强调可读性与可预测性。
//
// # 设计参考
//
//   - Windows 环境变量字符串: https://learn.microsoft.com/en-us/windows/win32/procthread/environment-variables
//
// # 语义说明
//
//  1. 定界符 % 每出现一次切换一次扫描模式，不支持转义
//  2. 片段是源字符串的子串，扫描全程不拷贝
//  3. 相邻定界符（%%）产生的空片段被静默丢弃，既不产出也不报错
//  4. 变量名中的空白或 "=" 立即报 [ErrInvalidName]
//  5. 未闭合的占位符在输入耗尽时报 [ErrInvalidFormat]
//  6. 替换值按原样插入，绝不递归展开
//
// # 快速开始
//
// 用固定映射展开：
//
//	vars := map[string]string{"NAME": "world"}
//	result, err := strexp.Expand("Hello %NAME%!", strexp.LookupMap(vars))
//
// 用进程环境变量展开：
//
//	result, err := strexp.ExpandEnv("home=%HOME%")
//
// 需要逐片段处理时直接驱动 [Scanner]：
//
//	sc := strexp.NewScanner(src)
//	for sc.Scan() {
//	    seg := sc.Segment()
//	    // ...
//	}
//	if err := sc.Err(); err != nil {
//	    // ...
//	}
//
// 详见 [Expand] 与 [Scanner] 文档。
package strexp
