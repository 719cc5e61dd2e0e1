package integrators

import (
	"testing"

	"github.com/san-kum/chaoskit/internal/dynamo"
)

func BenchmarkEuler(b *testing.B) {
	integrator := NewEuler()
	x := dynamo.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(&oscillator{}, x, 0, 0.01)
	}
}

func BenchmarkHeun(b *testing.B) {
	integrator := NewHeun()
	x := dynamo.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(&oscillator{}, x, 0, 0.01)
	}
}

func BenchmarkMidpoint(b *testing.B) {
	integrator := NewMidpoint()
	x := dynamo.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(&oscillator{}, x, 0, 0.01)
	}
}

func BenchmarkRK4(b *testing.B) {
	integrator := NewRK4()
	x := dynamo.State{1.0, 0.0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x = integrator.Step(&oscillator{}, x, 0, 0.01)
	}
}
