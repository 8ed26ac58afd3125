// Package buffer provides a reusable complex sample buffer and a pool of
// them for hot loops such as overlap-save correlation. Library functions
// take raw []complex64; Buffer only helps callers manage reuse.
package buffer
