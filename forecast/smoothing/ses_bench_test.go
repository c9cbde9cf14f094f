package smoothing

import (
	"math"
	"testing"
)

func benchSeries(n int) []float64 {
	y := make([]float64, n)
	for i := range y {
		y[i] = 100 + 0.05*float64(i) + 3*math.Sin(float64(i)/7)
	}
	return y
}

func BenchmarkSSE(b *testing.B) {
	y := benchSeries(1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = sse(y, 0.3, 100)
	}
}

func BenchmarkSmooth(b *testing.B) {
	y := benchSeries(1000)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Smooth(y, 0.3, 100, 24); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFitJoint(b *testing.B) {
	y := benchSeries(500)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m, err := NewSimpleExpSmoothing(y, WithHorizon(12))
		if err != nil {
			b.Fatal(err)
		}
		if _, err := m.Fit(); err != nil {
			b.Fatal(err)
		}
	}
}
