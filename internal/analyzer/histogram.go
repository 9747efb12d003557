package analyzer

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/ivlev/volscene/internal/volume"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// DefaultBins matches the 8-bit density domain of a transfer function
const DefaultBins = 256

type Options struct {
	Bins    int
	Workers int
	// PreviewEdge bounds the longest slice side before binning; 0 keeps full size
	PreviewEdge int
}

// Compute builds one histogram over every slice of stack. Slices are read
// and binned in parallel; the first error cancels the remaining slices.
func Compute(ctx context.Context, stack volume.Stack, a Analyzer, opts Options) ([]int, error) {
	if opts.Bins <= 0 {
		opts.Bins = DefaultBins
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	total := make([]int, opts.Bins)
	var mu sync.Mutex
	pool := &slicePool{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i := 0; i < stack.SliceCount(); i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			img, err := stack.ReadSlice(i)
			if err != nil {
				return fmt.Errorf("slice %d: %w", i, err)
			}

			gray := toGray(pool, img, opts.PreviewEdge)
			defer pool.put(gray)

			local := make([]int, opts.Bins)
			a.Accumulate(gray, local)

			mu.Lock()
			for b, n := range local {
				total[b] += n
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return total, nil
}

// PreviewSize scales (w, h) down so the longest side is at most edge
func PreviewSize(w, h, edge int) (int, int) {
	if edge <= 0 || (w <= edge && h <= edge) {
		return w, h
	}
	if w >= h {
		return edge, max(1, h*edge/w)
	}
	return max(1, w*edge/h), edge
}

// toGray converts img to a pooled grayscale buffer, downscaling to the
// preview edge when needed.
func toGray(pool *slicePool, img image.Image, edge int) *image.Gray {
	b := img.Bounds()
	w, h := PreviewSize(b.Dx(), b.Dy(), edge)
	dst := pool.get(image.Pt(w, h))

	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return dst
}
