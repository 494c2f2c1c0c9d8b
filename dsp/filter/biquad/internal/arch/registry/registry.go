// Package registry holds the block kernels a biquad.Filter can dispatch to.
// Kernels register themselves from init functions and the filter picks one
// on first use.
package registry

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients mirror biquad.Coefficients without importing the parent
// package. a0 is normalized to 1.
type Coefficients struct {
	A1, A2     float64
	B0, B1, B2 float64
}

// ProcessBlockFn filters buf in-place starting from state (s1, s2) and returns
// the state after the last sample. Implementations must evaluate the same
// expressions in the same order as biquad.Filter.ProcessSample.
type ProcessBlockFn func(c Coefficients, s1, s2 float64, buf []float64) (newS1, newS2 float64)

// OpEntry is one registered block kernel.
type OpEntry struct {
	Name         string
	SIMDLevel    cpu.SIMDLevel // minimum CPU level the kernel is tuned for
	Priority     int
	ProcessBlock ProcessBlockFn
}

// OpRegistry keeps kernels ordered by descending priority. Entries with equal
// priority keep registration order.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is the registry consulted by biquad.Filter.
var Global = &OpRegistry{}

// Register adds a kernel entry. A later entry with the same name replaces the
// earlier one.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = slices.DeleteFunc(r.entries, func(e OpEntry) bool { return e.Name == entry.Name })
	r.entries = append(r.entries, entry)
	slices.SortStableFunc(r.entries, func(a, b OpEntry) int { return b.Priority - a.Priority })
}

// Lookup returns the highest-priority kernel usable with features, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			entry := r.entries[i]
			return &entry
		}
	}

	return nil
}

// ByName returns the kernel registered under name, or nil.
func (r *OpRegistry) ByName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.entries, func(e OpEntry) bool { return e.Name == name })
	if i < 0 {
		return nil
	}

	entry := r.entries[i]
	return &entry
}

// Names lists registered kernels in lookup order.
func (r *OpRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
}
