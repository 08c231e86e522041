package timeline

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/radioactive/internal/decay"
	"github.com/san-kum/radioactive/internal/logger"
)

const (
	DefaultFloor     = 1.0 // Bq
	DefaultMaxDecade = 12
)

// Sampler evaluates a profile over many times concurrently. Profiles are
// pure, so samples are independent.
type Sampler struct {
	workers int
	log     *logger.Logger
}

func NewSampler(workers int, log *logger.Logger) *Sampler {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Sampler{workers: workers, log: log}
}

func (s *Sampler) Workers() int { return s.workers }

func (s *Sampler) Sample(ctx context.Context, p decay.Profile, q decay.Quantity, times []float64) (*Series, error) {
	samples := make([]decay.Sample, len(times))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, t := range times {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			smp, err := decay.Evaluate(p, q, t)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i, err)
			}
			samples[i] = smp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.Debug("sampled profile", "quantity", string(q), "points", len(times), "workers", s.workers)
	return &Series{Quantity: q, Times: append([]float64(nil), times...), Samples: samples}, nil
}

// UntilBelow samples decade by decade from 10^0 until the last total of a
// decade is at or below floor, or maxDecade has been sampled.
func (s *Sampler) UntilBelow(ctx context.Context, p decay.Profile, q decay.Quantity, floor float64, maxDecade int) (*Series, error) {
	out := &Series{Quantity: q}
	for d := 0; d <= maxDecade; d++ {
		part, err := s.Sample(ctx, p, q, decade(d))
		if err != nil {
			return nil, err
		}
		out.Times = append(out.Times, part.Times...)
		out.Samples = append(out.Samples, part.Samples...)

		last := part.Samples[len(part.Samples)-1].Total
		if last <= floor {
			s.log.Debug("reached floor", "decade", d, "total", last, "floor", floor)
			return out, nil
		}
	}
	s.log.Warn("floor not reached", "max_decade", maxDecade, "floor", floor)
	return out, nil
}
