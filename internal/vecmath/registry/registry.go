// Package registry holds the complex vector kernel variants available to
// vecmath and picks the best one for the running CPU.
//
// Variant packages register themselves from init functions. Lookup returns
// the highest-priority entry whose SIMD level the CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-sdr/internal/cpu"
)

// OpEntry is one registered kernel set.
type OpEntry struct {
	// Name identifies the variant ("generic", "unrolled").
	Name string

	// SIMDLevel is the tier the variant is tuned for.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; higher wins. Generic uses 0.
	Priority int

	// ScaleInPlace computes dst[i] *= k.
	ScaleInPlace func(dst []complex64, k float32)

	// ConjInPlace negates the imaginary part of every element.
	ConjInPlace func(dst []complex64)

	// MulInPlace computes dst[i] *= src[i]. Lengths must match.
	MulInPlace func(dst, src []complex64)

	// AddInPlace computes dst[i] += src[i]. Lengths must match.
	AddInPlace func(dst, src []complex64)
}

// OpRegistry stores registered variants.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry used by vecmath.
var Global = &OpRegistry{}

// Register adds a variant. All registration should happen in init.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the best variant for features, or nil if none matches.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// Insertion sort; the registry holds a handful of entries.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered variants in priority order.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
