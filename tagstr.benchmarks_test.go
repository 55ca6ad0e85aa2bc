package tagstr

import (
	"strings"
	"testing"
)

// =============================================================================
// TRIMMER BENCHMARKS
// =============================================================================

func BenchmarkTrim_FastPath(b *testing.B) {
	chunks := Lit("no leading break, nothing to do")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Trim(chunks)
	}
}

func BenchmarkTrim_SmallBlock(b *testing.B) {
	chunks := Lit("\n      {\n        Hello, ", "!\n      }")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Trim(chunks)
	}
}

func BenchmarkTrim_LargeBlock(b *testing.B) {
	var raw strings.Builder
	for i := 0; i < 200; i++ {
		raw.WriteString("\n        line of indented template text")
	}
	chunks := Lit(raw.String())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Trim(chunks)
	}
}

func BenchmarkCook_NoEscapes(b *testing.B) {
	raw := strings.Repeat("plain text without any escapes ", 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cook(raw)
	}
}

func BenchmarkCook_DenseEscapes(b *testing.B) {
	raw := strings.Repeat(`\n\t\x41\u1234\0 `, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cook(raw)
	}
}

// =============================================================================
// TAG BENCHMARKS
// =============================================================================

func benchTag() *Tag[struct{}, []string, string] {
	return MustBuild(
		func(chunks *Chunks) ([]string, error) {
			trimmed, err := Trim(chunks, TrimEOLAtStart(), TrimEOLAtEnd())
			if err != nil {
				return nil, err
			}
			return trimmed.Cooked, nil
		},
		func(_ struct{}, cooked []string, _ *Chunks, values []any) (string, error) {
			var sb strings.Builder
			for i, chunk := range cooked {
				sb.WriteString(chunk)
				if i < len(values) {
					sb.WriteString(values[i].(string))
				}
			}
			return sb.String(), nil
		},
	)
}

func BenchmarkInvoke_CacheHit(b *testing.B) {
	tag := benchTag()
	chunks := Lit("\n    Hello, ", "!\n    ")
	if _, err := tag.Invoke(chunks, "warmup"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tag.Invoke(chunks, "world")
	}
}

func BenchmarkInvoke_CacheBypass(b *testing.B) {
	tag := benchTag()
	chunks, err := NewChunks(
		[]string{"\n    Hello, ", "!\n    "},
		[]string{"\n    Hello, ", "!\n    "},
	)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tag.Invoke(chunks, "world")
	}
}

func BenchmarkInvoke_Parallel(b *testing.B) {
	tag := benchTag()
	chunks := Lit("\n    Hello, ", "!\n    ")

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = tag.Invoke(chunks, "world")
		}
	})
}
