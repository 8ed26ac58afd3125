// Package sequence builds binary sequences from a seed and a recurrence,
// the way linear-feedback shift registers produce scrambling and
// synchronization codes.
package sequence
