package maze_test

import (
	"math/rand"
	"testing"
)

// BenchmarkGenerate measures carving a 64×64 torus.
func BenchmarkGenerate(b *testing.B) {
	m := newMaze(b, 64, 64)
	r := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Generate(r)
	}
}

// BenchmarkSolve measures A* on a generated 16×16×16 torus.
func BenchmarkSolve(b *testing.B) {
	m := newMaze(b, 16, 16, 16)
	m.Generate(rand.New(rand.NewSource(1)))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Solve(); err != nil {
			b.Fatal(err)
		}
	}
}
