package registry

import (
	"testing"

	"github.com/cwbudde/algo-sdr/internal/cpu"
)

func TestLookupPrefersHighestCompatiblePriority(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	r.Register(OpEntry{Name: "avx2", SIMDLevel: cpu.SIMDAVX2, Priority: 20})
	r.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 15})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{"avx2", cpu.Features{HasSSE2: true, HasAVX2: true}, "avx2"},
		{"neon", cpu.Features{HasNEON: true}, "neon"},
		{"baseline", cpu.Features{}, "generic"},
		{"forced", cpu.Features{HasAVX2: true, ForceGeneric: true}, "generic"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Lookup(tc.features)
			if got == nil {
				t.Fatal("Lookup() = nil")
			}
			if got.Name != tc.want {
				t.Fatalf("Lookup() = %q, want %q", got.Name, tc.want)
			}
		})
	}
}

func TestLookupEmpty(t *testing.T) {
	r := &OpRegistry{}
	if got := r.Lookup(cpu.Features{}); got != nil {
		t.Fatalf("Lookup() on empty registry = %q, want nil", got.Name)
	}
}

func TestListEntriesSorted(t *testing.T) {
	r := &OpRegistry{}
	r.Register(OpEntry{Name: "a", Priority: 1})
	r.Register(OpEntry{Name: "b", Priority: 30})
	r.Register(OpEntry{Name: "c", Priority: 10})

	entries := r.ListEntries()
	want := []string{"b", "c", "a"}
	for i, e := range entries {
		if e.Name != want[i] {
			t.Fatalf("entries[%d] = %q, want %q", i, e.Name, want[i])
		}
	}
}
