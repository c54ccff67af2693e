package dtw_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvchirp/dtw"
	"github.com/katalvlaran/lvchirp/matrix"
)

// benchmarkForward runs ForwardInto on an n×m matrix with reused buffers.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkForward(b *testing.B, n, m int, steps dtw.Steps) {
	rng := rand.New(rand.NewSource(1))
	M := randomDistance(b, rng, n, m)
	D, _ := matrix.NewDense(n, m)
	S, _ := matrix.NewIntDense(n, m)
	opts := dtw.Options{ValidateFinite: false}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if err := dtw.ForwardInto(M, steps, D, S, &opts); err != nil {
			b.Fatalf("ForwardInto failed: %v", err) // report and stop on error
		}
	}
}

// BenchmarkForward_DefaultSmall benchmarks the symmetric set on 100×100.
func BenchmarkForward_DefaultSmall(b *testing.B) {
	benchmarkForward(b, 100, 100, dtw.DefaultSteps())
}

// BenchmarkForward_DefaultMedium benchmarks the symmetric set on 500×500.
func BenchmarkForward_DefaultMedium(b *testing.B) {
	benchmarkForward(b, 500, 500, dtw.DefaultSteps())
}

// BenchmarkForward_Dynamic benchmarks a wide dynamic set on a 200×600 matrix.
func BenchmarkForward_Dynamic(b *testing.B) {
	steps, err := dtw.DynamicSteps(200, 600, 2)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkForward(b, 200, 600, steps)
}
