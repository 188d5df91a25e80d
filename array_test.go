package noise_test

import (
	"testing"

	"github.com/nozzle/noise"
)

func TestFillArray2DMatchesScalar(t *testing.T) {
	gen := mustNew(t, 12345)

	const (
		width  = 37
		height = 23
		x0     = -1.5
		y0     = 2.25
		step   = 0.125
	)
	out := make([]float64, width*height)
	if err := gen.FillArray2D(x0, y0, width, height, step, out); err != nil {
		t.Fatal(err)
	}

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			want := gen.Noise2D(x0+float64(i)*step, y0+float64(j)*step)
			if got := out[j*width+i]; got != want {
				t.Fatalf("cell (%d, %d): got %v, expected %v", i, j, got, want)
			}
		}
	}
}

func TestFillArray2DParallelMatchesSerial(t *testing.T) {
	// Rows only read shared immutable state, so the worker count must not
	// change a single bit of the output.
	cfg := noise.DefaultConfig()
	cfg.Seed = 12345
	cfg.NumWorkers = 1
	serial, err := noise.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.NumWorkers = 4
	parallel, err := noise.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	const width, height = 64, 48
	a := make([]float64, width*height)
	b := make([]float64, width*height)
	if err := serial.FillArray2D(0, 0, width, height, 0.1, a); err != nil {
		t.Fatal(err)
	}
	if err := parallel.FillArray2D(0, 0, width, height, 0.1, b); err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d: serial %v != parallel %v", i, a[i], b[i])
		}
	}
}

func TestFillArray3DMatchesScalar(t *testing.T) {
	gen := mustNew(t, 12345)

	const (
		width  = 11
		height = 9
		depth  = 7
		step   = 0.2
	)
	out := make([]float64, width*height*depth)
	if err := gen.FillArray3D(0.5, -0.5, 1.0, width, height, depth, step, out); err != nil {
		t.Fatal(err)
	}

	for k := 0; k < depth; k++ {
		for j := 0; j < height; j++ {
			for i := 0; i < width; i++ {
				want := gen.Noise3D(0.5+float64(i)*step, -0.5+float64(j)*step, 1.0+float64(k)*step)
				if got := out[k*width*height+j*width+i]; got != want {
					t.Fatalf("cell (%d, %d, %d): got %v, expected %v", i, j, k, got, want)
				}
			}
		}
	}
}

func TestFillArrayErrors(t *testing.T) {
	gen := mustNew(t, 12345)

	if err := gen.FillArray2D(0, 0, 4, 4, 0.1, nil); err == nil {
		t.Error("expected error for nil buffer")
	}
	if err := gen.FillArray2D(0, 0, 0, 4, 0.1, make([]float64, 16)); err == nil {
		t.Error("expected error for zero width")
	}
	if err := gen.FillArray2D(0, 0, 4, -1, 0.1, make([]float64, 16)); err == nil {
		t.Error("expected error for negative height")
	}
	if err := gen.FillArray2D(0, 0, 4, 4, 0.1, make([]float64, 15)); err == nil {
		t.Error("expected error for short buffer")
	}
	if err := gen.FillArray3D(0, 0, 0, 4, 4, 4, 0.1, make([]float64, 63)); err == nil {
		t.Error("expected error for short 3D buffer")
	}
}

func BenchmarkFillArray2D(b *testing.B) {
	gen, _ := noise.NewSeeded(12345)
	out := make([]float64, 256*256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		gen.FillArray2D(0, 0, 256, 256, 0.01, out)
	}
}
