package fixstr

import "testing"

func BenchmarkAppendZeroAllocs(b *testing.B) {
	s := New(256)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for !s.IsFull() {
			_ = s.Append("chunk of ")
			_ = s.AppendByte('x')
		}
		s.Clear()
	}
}

func BenchmarkReplaceMiddle(b *testing.B) {
	s, _ := Make(128, "the quick brown fox jumps over the lazy dog")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Replace(4, 9, "slow!")
		_ = s.Replace(4, 9, "quick")
	}
}

func BenchmarkAppendInt(b *testing.B) {
	s := New(64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Clear()
		_ = s.AppendInt(int64(i), 10)
	}
}

func BenchmarkIndex(b *testing.B) {
	s, _ := Make(64, "the quick brown fox jumps over the lazy dog")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Index("lazy")
	}
}
