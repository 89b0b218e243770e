package parser_test

import (
	"strings"
	"testing"

	"github.com/leonardinius/loxfront/internal/parser"
	"github.com/leonardinius/loxfront/internal/scanner"
)

func BenchmarkScanAndParse(b *testing.B) {
	input := strings.Repeat(`(1 + 2) * -3 / "four" != !true == nil; `, 200)

	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		tokens, err := scanner.NewScanner(input).Scan()
		if err != nil {
			b.Fatal(err)
		}
		if _, err := parser.NewParser(tokens).ParseAll(); err != nil {
			b.Fatal(err)
		}
	}
}
