package strexp_test

import (
	"fmt"
	"os"

	"github.com/lwmacct/260828-go-pkg-strexp/pkg/strexp"
)

// Example_expand 演示用固定映射展开占位符。
func Example_expand() {
	vars := map[string]string{
		"DRINK": "a cup of tea",
		"FOOD":  "cookies",
	}

	result, _ := strexp.Expand("This is a string with a %DRINK% and some %FOOD%.", strexp.LookupMap(vars))
	fmt.Println(result)

	// Output:
	// This is a string with a a cup of tea and some cookies.
}

// Example_expandEnv 演示以环境变量为数据源展开。
func Example_expandEnv() {
	_ = os.Setenv("GREETING", "hello")
	defer func() { _ = os.Unsetenv("GREETING") }()

	result, _ := strexp.ExpandEnv("%GREETING%, world")
	fmt.Println(result)

	// Output:
	// hello, world
}

// Example_scanner 演示逐片段驱动扫描器。
func Example_scanner() {
	sc := strexp.NewScanner("foo%bar%")
	for sc.Scan() {
		seg := sc.Segment()
		if seg.Kind == strexp.SegmentVariable {
			fmt.Printf("var: %s\n", seg.Text)
		} else {
			fmt.Printf("lit: %s\n", seg.Text)
		}
	}

	// Output:
	// lit: foo
	// var: bar
}

// Example_lookupFirst 演示分层查询：先查映射，再回退到原样保留。
func Example_lookupFirst() {
	vars := map[string]string{"NAME": "strexp"}
	lookup := strexp.LookupFirst(strexp.LookupMap(vars), strexp.LookupKeep)

	result, _ := strexp.Expand("%NAME% keeps %UNKNOWN%", lookup)
	fmt.Println(result)

	// Output:
	// strexp keeps %UNKNOWN%
}
