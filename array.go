package noise

import (
	"fmt"

	"github.com/nozzle/noise/internal/parallel"
)

// FillArray2D fills out with one raw kernel sample per grid cell in
// row-major order:
//
//	out[row*width+col] = Noise2D(x0+col*step, y0+row*step)
//
// It is a loop-fusion convenience, not an alternate algorithm: results are
// bit-identical to the per-cell scalar calls for any worker count, since
// sampling only reads the built table. Rows are sharded across
// Config.NumWorkers workers.
func (g *Generator) FillArray2D(x0, y0 float64, width, height int, step float64, out []float64) error {
	if out == nil {
		return fmt.Errorf("noise: nil output buffer")
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("noise: grid dimensions must be positive, got %dx%d", width, height)
	}
	if len(out) < width*height {
		return fmt.Errorf("noise: output buffer holds %d values, need %d", len(out), width*height)
	}

	parallel.For(0, height, g.workers(), func(row int) {
		y := y0 + float64(row)*step
		base := row * width
		for col := 0; col < width; col++ {
			out[base+col] = g.Noise2D(x0+float64(col)*step, y)
		}
	})
	return nil
}

// FillArray3D is the 3D counterpart of FillArray2D:
//
//	out[(plane*height+row)*width+col] =
//		Noise3D(x0+col*step, y0+row*step, z0+plane*step)
//
// Planes are sharded across Config.NumWorkers workers.
func (g *Generator) FillArray3D(x0, y0, z0 float64, width, height, depth int, step float64, out []float64) error {
	if out == nil {
		return fmt.Errorf("noise: nil output buffer")
	}
	if width <= 0 || height <= 0 || depth <= 0 {
		return fmt.Errorf("noise: grid dimensions must be positive, got %dx%dx%d", width, height, depth)
	}
	if len(out) < width*height*depth {
		return fmt.Errorf("noise: output buffer holds %d values, need %d", len(out), width*height*depth)
	}

	parallel.For(0, depth, g.workers(), func(plane int) {
		z := z0 + float64(plane)*step
		for row := 0; row < height; row++ {
			y := y0 + float64(row)*step
			base := (plane*height + row) * width
			for col := 0; col < width; col++ {
				out[base+col] = g.Noise3D(x0+float64(col)*step, y, z)
			}
		}
	})
	return nil
}

func (g *Generator) workers() int {
	if g.cfg.NumWorkers <= 0 {
		return parallel.NumWorkers()
	}
	return g.cfg.NumWorkers
}
