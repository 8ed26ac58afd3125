// Command corrscan demonstrates matched-filter detection of a pseudo-random
// BPSK preamble buried in complex noise.
//
// Usage:
//
//	corrscan [flags]
//
// The preamble is the x1 half of the LTE Gold sequence mapped to +-1. It is
// added to white noise at one or more offsets and the signal is scanned
// with overlap-save FFT correlation. Every lag whose score exceeds the
// threshold is printed along with the EVM of the matched segment.
//
// Examples:
//
//	corrscan
//	corrscan -n 2048 -pattern 255 -offset 100,5000 -noise 1.5
//	corrscan -backend gonum -threshold 0.4
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sdr/dsp/correlate"
	"github.com/cwbudde/algo-sdr/dsp/evm"
	"github.com/cwbudde/algo-sdr/dsp/fft"
	"github.com/cwbudde/algo-sdr/dsp/sequence"
	"github.com/cwbudde/algo-sdr/dsp/signal"
	"github.com/cwbudde/algo-sdr/dsp/vecops"
)

type options struct {
	n         int
	length    int
	pattern   int
	offsets   []int
	noise     float64
	seed      int64
	backend   fft.Backend
	threshold float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	pattern := preamble(opts.pattern)
	samples, err := synthesize(pattern, opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	plan, err := fft.New(opts.n, fft.WithBackend(opts.backend))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	c, err := correlate.New(pattern, plan)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	energy := vecops.Mean(vecops.Powers(nil, pattern)) * float64(len(pattern))
	found, err := c.Scan(samples, opts.threshold*energy)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "backend=%s n=%d hop=%d pattern=%d signal=%d\n",
		plan.Backend(), plan.Len(), c.Hop(), len(pattern), len(samples))
	printDetections(stdout, found, samples, pattern, energy)
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("corrscan", flag.ContinueOnError)
	fs.SetOutput(stderr)

	n := fs.Int("n", 1024, "transform length")
	length := fs.Int("length", 8192, "signal length in samples")
	pattern := fs.Int("pattern", 127, "preamble length in symbols")
	offsets := fs.String("offset", "3000", "comma-separated preamble offsets")
	noise := fs.Float64("noise", 0.5, "noise amplitude per component")
	seed := fs.Int64("seed", 1, "noise seed")
	backend := fs.String("backend", "auto", "FFT backend: auto, algofft, gonum, godsp")
	threshold := fs.Float64("threshold", 0.5, "detection threshold as a fraction of preamble energy")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: corrscan [flags]\n\n")
		fmt.Fprintf(stderr, "Scans a noisy signal for a BPSK preamble with FFT correlation.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	b, err := fft.ParseBackend(*backend)
	if err != nil {
		return options{}, err
	}
	offs, err := parseOffsets(*offsets)
	if err != nil {
		return options{}, err
	}

	opts := options{
		n:         *n,
		length:    *length,
		pattern:   *pattern,
		offsets:   offs,
		noise:     *noise,
		seed:      *seed,
		backend:   b,
		threshold: *threshold,
	}
	switch {
	case opts.pattern <= 0:
		return options{}, fmt.Errorf("-pattern must be positive: %d", opts.pattern)
	case opts.pattern > opts.n:
		return options{}, fmt.Errorf("-pattern %d exceeds -n %d", opts.pattern, opts.n)
	case opts.length < opts.pattern:
		return options{}, fmt.Errorf("-length %d shorter than -pattern %d", opts.length, opts.pattern)
	}
	for _, off := range opts.offsets {
		if off < 0 || off+opts.pattern > opts.length {
			return options{}, fmt.Errorf("offset %d does not fit a %d-symbol preamble in %d samples",
				off, opts.pattern, opts.length)
		}
	}
	return opts, nil
}

func parseOffsets(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid offset %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// warmup skips the sparse start of the shift register, as LTE does.
const warmup = 1600

// preamble returns length BPSK symbols of the sequence
// x1(n+31) = (x1(n+3) + x1(n)) mod 2 seeded with x1(0) = 1.
func preamble(length int) []complex64 {
	seed := sequence.Expand(1)[:31]
	x1 := func(n int, seq []uint8) uint8 { return (seq[n-28] + seq[n-31]) % 2 }
	bits := sequence.Generate(seed, x1, warmup+length)
	return sequence.BPSK(bits[warmup:])
}

func synthesize(pattern []complex64, opts options) ([]complex64, error) {
	g := signal.NewGenerator(signal.WithSeed(opts.seed))
	out, err := g.WhiteNoise(opts.noise, opts.length)
	if err != nil {
		return nil, err
	}
	for _, off := range opts.offsets {
		vecops.Add(out[off:], pattern)
	}
	return out, nil
}

func printDetections(w io.Writer, found []correlate.Detection, samples, pattern []complex64, energy float64) {
	if len(found) == 0 {
		fmt.Fprintln(w, "no detections")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Lag\tScore\tScore/Energy\tPeak/Mean\tEVM (dB)\t\n")
	fmt.Fprintf(tw, "---\t-----\t------------\t---------\t--------\t\n")
	for _, d := range found {
		seg := samples[d.Lag : d.Lag+len(pattern)]
		ratio := 0.0
		if d.Mean > 0 {
			ratio = d.Magnitude / d.Mean
		}
		fmt.Fprintf(tw, "%d\t%.2f\t%.3f\t%.1f\t%.1f\t\n",
			d.Lag, d.Magnitude, d.Magnitude/energy, ratio, evm.DB(evm.RMS(seg, pattern)))
	}
	tw.Flush()
}
