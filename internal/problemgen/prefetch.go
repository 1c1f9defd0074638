package problemgen

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/abhisek/simplify/internal/fraction"
)

// Prefetcher keeps a small buffer of exercises from a slow primary
// generator (an LLM) filled in the background. Generate never waits on
// the primary: when the buffer is empty it answers from the fallback.
type Prefetcher struct {
	primary  Generator
	fallback Generator
	buf      chan fraction.Fraction
	refills  singleflight.Group
	logger   *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPrefetcher starts filling a buffer of the given size from primary.
// Close must be called to stop the background work.
func NewPrefetcher(primary, fallback Generator, size int, logger *slog.Logger) *Prefetcher {
	if size < 1 {
		size = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &Prefetcher{
		primary:  primary,
		fallback: fallback,
		buf:      make(chan fraction.Fraction, size),
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
	p.kick()
	return p
}

// Generate returns a buffered exercise, or one from the fallback when the
// buffer is empty. Either way a refill is triggered.
func (p *Prefetcher) Generate(ctx context.Context) (fraction.Fraction, error) {
	defer p.kick()

	select {
	case f := <-p.buf:
		return f, nil
	default:
		p.logger.Debug("prefetch buffer empty, using fallback generator")
		return p.fallback.Generate(ctx)
	}
}

// Buffered returns the number of exercises ready to serve.
func (p *Prefetcher) Buffered() int {
	return len(p.buf)
}

// Close stops background refills and waits for them to finish.
func (p *Prefetcher) Close() {
	p.cancel()
	p.wg.Wait()
}

// kick starts a refill unless one is already running.
func (p *Prefetcher) kick() {
	if p.ctx.Err() != nil {
		return
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		_, err, _ := p.refills.Do("refill", func() (any, error) {
			return nil, p.refill()
		})
		if err != nil && p.ctx.Err() == nil {
			p.logger.Warn("exercise prefetch failed", "error", err)
		}
	}()
}

func (p *Prefetcher) refill() error {
	for len(p.buf) < cap(p.buf) {
		f, err := p.primary.Generate(p.ctx)
		if err != nil {
			return err
		}
		select {
		case p.buf <- f:
		case <-p.ctx.Done():
			return p.ctx.Err()
		}
	}
	return nil
}
