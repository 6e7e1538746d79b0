package strexp

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Delim 占位符定界符，例如 %NAME%。
const Delim = '%'

// 扫描阶段的错误哨兵，可用 [errors.Is] 判断。
// Scanner 返回的错误会附带出错位置的字节偏移。
var (
	// ErrInvalidFormat 定界符数量为奇数，变量引用打开后未闭合。
	ErrInvalidFormat = errors.New("strexp: unterminated variable reference")

	// ErrInvalidName 变量名中出现空白或 "=" 字符。
	ErrInvalidName = errors.New("strexp: invalid character in variable name")
)

// ═══════════════════════════════════════════════════════════════════════════
// 片段模型
// ═══════════════════════════════════════════════════════════════════════════

// SegmentKind 片段类型。
type SegmentKind int

const (
	// SegmentLiteral 字面量文本，展开时原样输出。
	SegmentLiteral SegmentKind = iota
	// SegmentVariable 变量名（两个定界符之间的文本），展开时作为查询 key。
	SegmentVariable
)

// Segment 扫描输出的单个片段。
//
// Text 是源字符串的子串（与源共享底层存储，不做拷贝），保证非空。
type Segment struct {
	Kind SegmentKind
	Text string
}

// ═══════════════════════════════════════════════════════════════════════════
// 扫描器
// ═══════════════════════════════════════════════════════════════════════════

// Scanner 对源字符串做单遍惰性扫描，逐个产出 [Segment]。
//
// 用法与 [bufio.Scanner] 一致：
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
// 扫描按 Unicode 码点推进，切片偏移始终落在字符边界上。
// 一旦产出错误或输入耗尽，后续 Scan 永远返回 false；
// 重新扫描需要构造新的 Scanner。
type Scanner struct {
	src        string
	pos        int  // 当前扫描到的字节偏移
	tokenStart int  // 当前片段的起始字节偏移
	readingVar bool // 是否处于变量引用内部
	done       bool
	seg        Segment
	err        error
}

// NewScanner 构造针对 src 的扫描器。
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Scan 推进到下一个片段，有片段可取时返回 true。
//
// 返回 false 表示输入耗尽或发生终止性错误，此后调用恒为 false；
// 区分两者需检查 [Scanner.Err]。
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	for s.pos < len(s.src) {
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		switch {
		case r == Delim:
			wasVar := s.readingVar
			s.readingVar = !s.readingVar

			start, end := s.tokenStart, s.pos
			s.pos += size
			s.tokenStart = s.pos

			// 相邻定界符之间的空片段直接丢弃，不产出也不报错
			if end > start {
				kind := SegmentLiteral
				if wasVar {
					kind = SegmentVariable
				}
				s.seg = Segment{Kind: kind, Text: s.src[start:end]}

				return true
			}
		case s.readingVar && (r == '=' || unicode.IsSpace(r)):
			s.done = true
			s.err = fmt.Errorf("%w: %q at offset %d", ErrInvalidName, r, s.pos)

			return false
		default:
			s.pos += size
		}
	}

	s.done = true

	// 输入耗尽时仍在变量引用内部，说明占位符未闭合
	if s.readingVar {
		s.err = fmt.Errorf("%w (opened at offset %d)", ErrInvalidFormat, s.tokenStart-utf8.RuneLen(Delim))

		return false
	}

	if s.tokenStart < len(s.src) {
		s.seg = Segment{Kind: SegmentLiteral, Text: s.src[s.tokenStart:]}
		s.tokenStart = len(s.src)

		return true
	}

	return false
}

// Segment 返回最近一次 Scan 产出的片段。
//
// 仅在 Scan 返回 true 后有效。
func (s *Scanner) Segment() Segment {
	return s.seg
}

// Err 返回终止扫描的错误；正常耗尽时为 nil。
func (s *Scanner) Err() error {
	return s.err
}

// Split 一次性扫描 src 并返回全部片段。
//
// 等价于驱动 [Scanner] 到结束；出错时返回 nil 片段与该错误。
func Split(src string) ([]Segment, error) {
	var segments []Segment
	sc := NewScanner(src)
	for sc.Scan() {
		segments = append(segments, sc.Segment())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return segments, nil
}
