// Package waterfall turns successive sample rows into magnitude spectra
// for scrolling spectrum displays.
//
// Each row is forward transformed with symmetric scaling, reduced to bin
// magnitudes and rotated so the DC bin sits at column Cols()/2 with
// negative frequencies to its left. Only the most recent rows are kept.
// Rendering is left to the consumer.
package waterfall

import (
	"context"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-sdr/dsp/core"
	"github.com/cwbudde/algo-sdr/dsp/fft"
	"github.com/cwbudde/algo-sdr/dsp/vecops"
	"github.com/cwbudde/algo-sdr/dsp/window"
)

// DefaultRows is the history depth used when WithRows is not given.
const DefaultRows = 200

// dBFloor replaces log10(0) in decibel output.
const dBFloor = -200

type config struct {
	rows     int
	backend  fft.Backend
	decibels bool
	window   window.Type
}

// Option configures a Waterfall.
type Option func(*config)

// WithRows sets how many rows of history are kept. Values below 1 are
// ignored.
func WithRows(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.rows = n
		}
	}
}

// WithBackend selects the transform engine.
func WithBackend(b fft.Backend) Option {
	return func(cfg *config) {
		cfg.backend = b
	}
}

// WithWindow tapers every row with the periodic form of t before the
// transform. The default is rectangular (no taper).
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.window = t
	}
}

// WithDecibels stores 20*log10(magnitude) instead of linear magnitude.
func WithDecibels() Option {
	return func(cfg *config) {
		cfg.decibels = true
	}
}

// Waterfall accumulates spectrum rows. It is safe for concurrent use.
type Waterfall struct {
	mu sync.Mutex

	cols     int
	maxRows  int
	decibels bool
	plan     *fft.Plan
	taper    []float64

	frame []complex64
	spec  []complex64
	mags  []float64
	rows  [][]float32
}

// New creates a waterfall whose rows have cols samples.
func New(cols int, opts ...Option) (*Waterfall, error) {
	cfg := config{rows: DefaultRows, backend: fft.BackendAuto}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	plan, err := fft.New(cols, fft.WithBackend(cfg.backend))
	if err != nil {
		return nil, fmt.Errorf("waterfall: %w", err)
	}

	w := &Waterfall{
		cols:     cols,
		maxRows:  cfg.rows,
		decibels: cfg.decibels,
		plan:     plan,
		spec:     make([]complex64, cols),
		mags:     make([]float64, cols),
		rows:     make([][]float32, 0, cfg.rows),
	}
	if cfg.window != window.TypeRectangular {
		w.taper = window.Generate(cfg.window, cols, window.WithPeriodic())
		w.frame = make([]complex64, cols)
	}
	return w, nil
}

// Cols returns the row width.
func (w *Waterfall) Cols() int { return w.cols }

// MaxRows returns the history depth.
func (w *Waterfall) MaxRows() int { return w.maxRows }

// Update transforms row and appends its spectrum, dropping the oldest row
// once the history is full. row is not modified. A row of the wrong
// length returns an error wrapping fft.ErrLengthMismatch.
func (w *Waterfall) Update(row []complex64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	src := row
	if w.taper != nil {
		if len(row) != w.cols {
			return fmt.Errorf("waterfall: %w: got %d, want %d", fft.ErrLengthMismatch, len(row), w.cols)
		}
		copy(w.frame, row)
		if err := window.Apply(w.frame, w.taper); err != nil {
			return fmt.Errorf("waterfall: %w", err)
		}
		src = w.frame
	}

	if err := w.plan.Forward(w.spec, src, fft.ScaleSN); err != nil {
		return fmt.Errorf("waterfall: %w", err)
	}
	w.mags = vecops.Magnitudes(w.mags, w.spec)

	var out []float32
	if len(w.rows) == w.maxRows {
		out = w.rows[0]
		copy(w.rows, w.rows[1:])
		w.rows = w.rows[:len(w.rows)-1]
	} else {
		out = make([]float32, w.cols)
	}

	half := w.cols / 2
	for i := range out {
		m := w.mags[(i-half+w.cols)%w.cols]
		if w.decibels {
			m = toDB(m)
		}
		out[i] = float32(m)
	}
	w.rows = append(w.rows, out)
	return nil
}

// Rows returns a copy of the history, oldest first.
func (w *Waterfall) Rows() [][]float32 {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([][]float32, len(w.rows))
	for i, r := range w.rows {
		out[i] = append([]float32(nil), r...)
	}
	return out
}

// Len returns the number of rows held.
func (w *Waterfall) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.rows)
}

// Reset drops all rows.
func (w *Waterfall) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rows = w.rows[:0]
}

// Consume feeds every row received on rows into Update until the channel
// is closed, ctx is done or a row is rejected.
func (w *Waterfall) Consume(ctx context.Context, rows <-chan []complex64) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case row, ok := <-rows:
			if !ok {
				return nil
			}
			if err := w.Update(row); err != nil {
				return err
			}
		}
	}
}

func toDB(m float64) float64 {
	return core.Floor(core.AmplitudeToDB(m), dBFloor)
}
