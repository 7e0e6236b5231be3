package simplex_test

import (
	"testing"

	"github.com/dorvarsul/terranoise/simplex"
)

// BenchmarkSample2 measures a single 2D sample on a long-lived Generator.
func BenchmarkSample2(b *testing.B) {
	g := simplex.New(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Sample2(float64(i)*0.01, 3.7)
	}
}
