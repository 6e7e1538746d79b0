package strexp_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260828-go-pkg-strexp/pkg/strexp"
)

func lit(text string) strexp.Segment {
	return strexp.Segment{Kind: strexp.SegmentLiteral, Text: text}
}

func variable(text string) strexp.Segment {
	return strexp.Segment{Kind: strexp.SegmentVariable, Text: text}
}

func TestSplit_Segments(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []strexp.Segment
	}{
		{
			name: "empty input yields no segments",
			src:  "",
			want: nil,
		},
		{
			name: "no delimiter is a single literal",
			src:  "just a plain string",
			want: []strexp.Segment{lit("just a plain string")},
		},
		{
			name: "trailing variable",
			src:  "foo%bar%",
			want: []strexp.Segment{lit("foo"), variable("bar")},
		},
		{
			name: "leading variable",
			src:  "%foo%bar",
			want: []strexp.Segment{variable("foo"), lit("bar")},
		},
		{
			name: "adjacent variables produce no empty segment",
			src:  "%foo%%bar%",
			want: []strexp.Segment{variable("foo"), variable("bar")},
		},
		{
			name: "bare delimiter pair yields nothing",
			src:  "%%",
			want: nil,
		},
		{
			name: "literal between variables",
			src:  "%greeting%, dear %name%!",
			want: []strexp.Segment{variable("greeting"), lit(", dear "), variable("name"), lit("!")},
		},
		{
			name: "multibyte runes around and inside a variable",
			src:  "héllo %vär% 日本",
			want: []strexp.Segment{lit("héllo "), variable("vär"), lit(" 日本")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := strexp.Split(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{
			name:    "single delimiter is malformed",
			src:     "%",
			wantErr: strexp.ErrInvalidFormat,
		},
		{
			name:    "unterminated trailing variable",
			src:     "foo %BAR",
			wantErr: strexp.ErrInvalidFormat,
		},
		{
			name:    "space inside variable name",
			src:     "Some %FOO BAR% here",
			wantErr: strexp.ErrInvalidName,
		},
		{
			name:    "equals sign inside variable name",
			src:     "Some %FOO=BAR% here",
			wantErr: strexp.ErrInvalidName,
		},
		{
			name:    "tab inside variable name",
			src:     "%FOO\tBAR%",
			wantErr: strexp.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, err := strexp.Split(tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, segments)
		})
	}
}

// 无空片段、片段非空，是扫描器的硬性保证。
func TestScanner_NeverEmitsEmptySegment(t *testing.T) {
	for _, src := range []string{"%%", "%%%%", "a%%b", "%x%%%y%", "%%tail", "head%%"} {
		sc := strexp.NewScanner(src)
		for sc.Scan() {
			assert.NotEmpty(t, sc.Segment().Text, "src=%q", src)
		}
		require.NoError(t, sc.Err(), "src=%q", src)
	}
}

// 良构输入的片段拼回定界符后应精确还原原文。
func TestScanner_RoundTrip(t *testing.T) {
	inputs := []string{
		"plain text only",
		"foo%bar%",
		"%foo%bar",
		"a %X% b %Y% c",
		"héllo %vär% 日本",
	}

	for _, src := range inputs {
		var buf strings.Builder
		sc := strexp.NewScanner(src)
		for sc.Scan() {
			seg := sc.Segment()
			if seg.Kind == strexp.SegmentVariable {
				buf.WriteRune(strexp.Delim)
				buf.WriteString(seg.Text)
				buf.WriteRune(strexp.Delim)
			} else {
				buf.WriteString(seg.Text)
			}
		}
		require.NoError(t, sc.Err(), "src=%q", src)
		assert.Equal(t, src, buf.String())
	}
}

// 终止是单调的：出错或耗尽之后 Scan 永远返回 false。
func TestScanner_TerminationIsMonotonic(t *testing.T) {
	t.Run("after error", func(t *testing.T) {
		sc := strexp.NewScanner("ok %BAD NAME%")
		require.True(t, sc.Scan())
		assert.Equal(t, lit("ok "), sc.Segment())

		require.False(t, sc.Scan())
		assert.ErrorIs(t, sc.Err(), strexp.ErrInvalidName)

		for range 3 {
			assert.False(t, sc.Scan())
		}
	})

	t.Run("after exhaustion", func(t *testing.T) {
		sc := strexp.NewScanner("tail")
		require.True(t, sc.Scan())
		require.False(t, sc.Scan())
		require.NoError(t, sc.Err())

		for range 3 {
			assert.False(t, sc.Scan())
		}
	})
}

// 报错信息应包含出错位置，便于调用方提示用户。
func TestScanner_ErrorMentionsOffset(t *testing.T) {
	sc := strexp.NewScanner("ab%cd ef%")
	require.True(t, sc.Scan())
	require.False(t, sc.Scan())

	err := sc.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, strexp.ErrInvalidName)
	assert.Contains(t, err.Error(), "offset 5")
}
