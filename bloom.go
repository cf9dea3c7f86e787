package approx

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
)

// ErrInvalidItem is returned by Filter.Add and Filter.Contains when given an
// empty item. Empty items are rejected before hashing so callers can tell
// "not a member" apart from "not a valid key".
var ErrInvalidItem = errors.New("approx: item must be a non-empty string")

// Filter is a non-thread-safe bloom filter over an m-bit array with k hash
// functions.
//
// The filter is append-only: bits are set by Add and never cleared, so the
// structure grows monotonically "fuller" and there is no removal operation.
// Clearing a bit would reintroduce false negatives for other items that
// share it. Both m and k are fixed at construction.
type Filter struct {
	bits *bitset.BitSet
	m    uint // size of the bit array in bits
	k    uint // number of hash functions
}

// NewFilter creates a bloom filter with an m-bit array and k hash functions.
// Zero parameters are clamped to one bit and one hash function.
func NewFilter(m, k uint) *Filter {
	if m == 0 {
		m = 1
	}
	if k == 0 {
		k = 1
	}

	return &Filter{
		bits: bitset.New(m),
		m:    m,
		k:    k,
	}
}

// NewFilterOptimal creates a bloom filter sized for the expected number of
// items and desired false positive rate.
func NewFilterOptimal(expectedItems uint, fpRate float64) *Filter {
	m, k := OptimalParams(expectedItems, fpRate)
	return NewFilter(m, k)
}

// Add inserts an item into the filter by setting its k bit positions.
// Re-adding an item is a no-op on the resulting bit array. Returns
// ErrInvalidItem for an empty item, leaving the filter untouched.
func (f *Filter) Add(item string) error {
	if item == "" {
		return ErrInvalidItem
	}

	for _, pos := range Positions(item, f.k, f.m) {
		f.bits.Set(pos)
	}

	return nil
}

// Contains reports whether item might have been added to the filter.
// It returns true iff all k bit positions for the item are set: an item
// previously passed to Add is always reported present (no false negatives),
// while an item never added may still be reported present with a probability
// that grows with the fill ratio of the bit array. Returns ErrInvalidItem
// for an empty item.
func (f *Filter) Contains(item string) (bool, error) {
	if item == "" {
		return false, ErrInvalidItem
	}

	for _, pos := range Positions(item, f.k, f.m) {
		if !f.bits.Test(pos) {
			return false, nil
		}
	}

	return true, nil
}

// Cap returns the capacity of the filter in bits.
func (f *Filter) Cap() uint {
	return f.m
}

// K returns the number of hash functions used.
func (f *Filter) K() uint {
	return f.k
}

// FillRatio returns the proportion of bits that are set.
func (f *Filter) FillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.m)
}

// EstimatedFalsePositiveRate estimates the probability that Contains reports
// true for an item that was never added, given the current fill ratio.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	fill := f.FillRatio()
	rate := 1.0
	for i := uint(0); i < f.k; i++ {
		rate *= fill
	}
	return rate
}

// equal reports whether two filters have identical parameters and bit
// arrays. Used by tests to verify idempotent insertion.
func (f *Filter) equal(other *Filter) bool {
	return f.m == other.m && f.k == other.k && f.bits.Equal(other.bits)
}
