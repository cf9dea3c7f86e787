// Package approx provides probabilistic data structures for answering
// approximate membership and approximate distinct-count questions over large
// or streaming inputs without storing every element.
//
// # Membership
//
// [Filter] is a bloom filter: a space-efficient probabilistic set. False
// positive matches are possible, but false negatives are not – if the filter
// says an item is not present, it definitely is not. Bit positions are
// derived by [Positions] using murmur3 double hashing, so a single hash
// computation serves any number of hash functions.
//
// Construct a filter either with explicit parameters or sized from an
// expected item count and target false positive rate:
//
//	f := approx.NewFilter(1000, 3)          // 1000 bits, 3 hash functions
//	f := approx.NewFilterOptimal(10_000, 0.01)
//
// The filter is append-only. Adding an item sets bits; nothing ever clears
// them, because a cleared bit could turn a true member into a false
// negative. The false positive rate grows with the fill ratio – monitor it
// with [Filter.EstimatedFalsePositiveRate].
//
// [CheckUniqueness] layers a stream-deduplication policy on top of a filter:
// each item in a batch is classified as unique (and inserted), already used,
// or invalid. Classification is order-sensitive: the first occurrence of a
// value in a batch is unique and later occurrences are not, mirroring
// "deduplicate against history plus already-seen-this-batch".
//
// # Cardinality
//
// [Sketch] is a HyperLogLog estimator of the number of distinct items in a
// stream, using 2^precision one-byte registers regardless of stream length.
// Construct it from a target standard error:
//
//	s, err := approx.NewSketch(0.01) // ~1% standard error, 16384 registers
//
// Observation is idempotent – adding the same item any number of times
// produces the same estimate as adding it once. [Compare] drives a sketch
// and an exact set-based baseline over the same input and reports both
// counts with timings.
//
// # Errors
//
// The only operational error in the package is [ErrInvalidItem], returned
// by [Filter.Add] and [Filter.Contains] for empty items. Hashing is total
// over every other string, and [Sketch.Add] accepts any string
// unconditionally. Constructors validate their parameters and return
// [ErrInvalidErrorRate] or [ErrPrecisionRange].
//
// # Thread Safety
//
// No type in this package is safe for concurrent mutation. A Filter or
// Sketch instance is meant to be exclusively owned by whichever component
// drives it for the duration of a processing pass; guard it with a mutex if
// you must share it across goroutines.
//
// # References
//
//   - Space/Time Trade-offs in Hash Coding with Allowable Errors (Bloom):
//     https://dl.acm.org/doi/10.1145/362686.362692
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
//   - HyperLogLog: http://algo.inria.fr/flajolet/Publications/FlFuGaMe07.pdf
package approx
