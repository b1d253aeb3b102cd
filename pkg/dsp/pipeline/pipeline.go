// Package pipeline wires the descriptor collection, generator, transform and
// conditioner into one recompute loop: every collection mutation produces a
// fresh conditioned spectrum, nothing is cached across mutations.
package pipeline

import (
	"errors"
	"sync"
	"time"

	"github.com/trentonstrong/spectrograph/internal/logging"
	"github.com/trentonstrong/spectrograph/pkg/dsp"
	"github.com/trentonstrong/spectrograph/pkg/dsp/signal"
	"github.com/trentonstrong/spectrograph/pkg/dsp/spectrum"
)

// Update is one pipeline result delivered to subscribers. NoData marks the
// recoverable states, an empty collection or a fully silent spectrum, where
// there is nothing meaningful to draw; Err carries the underlying cause for
// diagnostics. A NoData update never aborts the mutate/recompute cycle.
type Update struct {
	Spectrum []float64
	NoData   bool
	Err      error
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithDebounce coalesces mutations arriving within d into one trailing
// recomputation, bounding the recompute rate under rapid-fire edits such as
// slider drags. Zero recomputes synchronously on every mutation.
func WithDebounce(d time.Duration) Option {
	return func(p *Pipeline) {
		p.debounce = d
	}
}

// WithFloor clamps conditioned spectra to a finite noise floor in dB.
func WithFloor(floorDB float64) Option {
	return func(p *Pipeline) {
		p.floorDB = floorDB
		p.useFloor = true
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(logger logging.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Pipeline recomputes the conditioned spectrum of a descriptor collection on
// every mutation. Recomputations are serialized: at most one is in flight,
// and a mutation arriving mid-recompute simply runs the next one after.
type Pipeline struct {
	cfg         dsp.Config
	gen         signal.Generator
	transformer spectrum.Transformer
	collection  *signal.Collection
	logger      logging.Logger

	debounce time.Duration
	floorDB  float64
	useFloor bool

	runMu sync.Mutex // serializes recomputations

	mu          sync.Mutex // guards subscribers and the debounce timer
	subscribers []func(Update)
	timer       *time.Timer
}

// New creates a pipeline over the given collection and collaborators and
// subscribes to the collection's mutations.
func New(cfg dsp.Config, gen signal.Generator, transformer spectrum.Transformer, collection *signal.Collection, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:         cfg,
		gen:         gen,
		transformer: transformer,
		collection:  collection,
		logger:      logging.NewNopLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	p.logger = p.logger.WithFields(logging.Fields{
		"component":   "pipeline",
		"buffer_size": cfg.BufferSize,
		"sample_rate": cfg.SampleRate,
	})
	collection.Subscribe(p.onChange)
	return p
}

// Collection returns the descriptor collection driving the pipeline.
func (p *Pipeline) Collection() *signal.Collection {
	return p.collection
}

// Bands returns the band mapper consistent with this pipeline's spectra.
func (p *Pipeline) Bands() spectrum.Bands {
	return spectrum.NewBands(p.cfg)
}

// Subscribe registers a callback for every recomputed spectrum.
func (p *Pipeline) Subscribe(fn func(Update)) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	p.subscribers = append(p.subscribers, fn)
	p.mu.Unlock()
}

// Recompute runs the full pipeline once against the current collection
// contents and returns the update without publishing it. Pull counterpart to
// the Subscribe push API.
func (p *Pipeline) Recompute() Update {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	descs := p.collection.Snapshot()

	buf, err := signal.Mix(p.gen, descs, p.cfg)
	if err != nil {
		if !errors.Is(err, signal.ErrNoSignals) {
			p.logger.Warn("mix failed", logging.Fields{"error": err.Error()})
		}
		return Update{NoData: true, Err: err}
	}

	mags, err := p.transformer.Transform(buf)
	if err != nil {
		p.logger.Warn("transform failed", logging.Fields{"error": err.Error()})
		return Update{NoData: true, Err: err}
	}

	var conditioned []float64
	if p.useFloor {
		conditioned, err = spectrum.ConditionFloor(mags, p.floorDB)
	} else {
		conditioned, err = spectrum.Condition(mags)
	}
	if err != nil {
		return Update{NoData: true, Err: err}
	}

	p.logger.Debug("spectrum recomputed", logging.Fields{
		"descriptors": len(descs),
		"bands":       len(conditioned),
	})
	return Update{Spectrum: conditioned}
}

// Close stops any pending debounced recomputation.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.mu.Unlock()
}

func (p *Pipeline) onChange() {
	if p.debounce <= 0 {
		p.publish(p.Recompute())
		return
	}

	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.debounce, func() {
		p.publish(p.Recompute())
	})
	p.mu.Unlock()
}

func (p *Pipeline) publish(u Update) {
	p.mu.Lock()
	subs := make([]func(Update), len(p.subscribers))
	copy(subs, p.subscribers)
	p.mu.Unlock()
	for _, fn := range subs {
		fn(u)
	}
}
