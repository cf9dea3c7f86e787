package approx

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/zeebo/xxh3"
)

// two64 is 2^64 as a float64, the hash space size for range corrections.
const two64 float64 = 1 << 64

// ErrInvalidErrorRate is returned by NewSketch when the requested error rate
// is outside (0, 1) or would require more than 2^MaxPrecision registers.
var ErrInvalidErrorRate = errors.New("approx: error rate must be in (0, 1)")

// ErrPrecisionRange is returned by NewSketchWithPrecision when the precision
// falls outside [MinPrecision, MaxPrecision].
var ErrPrecisionRange = errors.New("approx: precision out of range")

// Sketch is a non-thread-safe HyperLogLog cardinality estimator. It tracks
// the approximate number of distinct items observed using 2^precision
// one-byte registers, independent of how many items are added.
//
// Each register holds the maximum rank (position of the first set bit in the
// item hash's suffix) observed for its hash bucket. Because the same item
// always hashes identically, re-adding an item can never change any
// register: observation is idempotent.
type Sketch struct {
	reg []uint8
	m   uint32 // number of registers, 2^p
	p   uint8  // precision: hash bits used to select a register
}

// NewSketch creates a sketch targeting the given standard error, a fraction
// in (0, 1) such as 0.01. Smaller error rates allocate more registers:
// the register count doubles roughly every time the error rate shrinks by
// a factor of sqrt(2).
func NewSketch(errorRate float64) (*Sketch, error) {
	if errorRate <= 0 || errorRate >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidErrorRate, errorRate)
	}

	p := precisionForErrorRate(errorRate)
	if p > MaxPrecision {
		return nil, fmt.Errorf("%w: %v requires precision %d, max is %d",
			ErrInvalidErrorRate, errorRate, p, MaxPrecision)
	}

	return NewSketchWithPrecision(p)
}

// NewSketchWithPrecision creates a sketch with an explicit precision in
// [MinPrecision, MaxPrecision]. The sketch uses 2^precision registers and
// has a standard error of roughly 1.04/sqrt(2^precision).
func NewSketchWithPrecision(p uint8) (*Sketch, error) {
	if p < MinPrecision || p > MaxPrecision {
		return nil, fmt.Errorf("%w: got %d, want %d..%d",
			ErrPrecisionRange, p, MinPrecision, MaxPrecision)
	}

	m := uint32(1) << p
	return &Sketch{
		reg: make([]uint8, m),
		m:   m,
		p:   p,
	}, nil
}

// Add observes an item. The top p bits of the item's 64-bit hash select a
// register; the rank of the remaining bits updates that register to the
// maximum of its current value and the observed rank. Any string is
// acceptable, including the empty string.
func (s *Sketch) Add(item string) {
	x := xxh3.HashString(item)
	i := x >> (64 - s.p)
	rank := rho(x<<s.p, 64-s.p)

	if rank > s.reg[i] {
		s.reg[i] = rank
	}
}

// rho returns one plus the length of the run of leading zeros in w, where w
// carries width significant bits. A w of all zeros yields width+1.
func rho(w uint64, width uint8) uint8 {
	rank := uint8(bits.LeadingZeros64(w)) + 1
	return min(rank, width+1)
}

// Estimate returns the estimated number of distinct items added so far.
// It combines the registers via the harmonic mean with bias correction,
// switching to linear counting for small cardinalities and to a logarithmic
// correction when the estimate approaches the hash space size. Estimate is
// a pure read: repeated calls without intervening Add return the same value.
func (s *Sketch) Estimate() float64 {
	sum := 0.0
	zeros := 0
	for _, v := range s.reg {
		sum += 1.0 / math.Exp2(float64(v))
		if v == 0 {
			zeros++
		}
	}

	m := float64(s.m)
	est := alpha(s.m) * m * m / sum

	switch {
	case est <= 2.5*m:
		// Small range: linear counting while empty registers remain.
		if zeros != 0 {
			return m * math.Log(m/float64(zeros))
		}
		return est
	case est <= two64/30:
		return est
	default:
		// Large range: correct for hash collisions near the 2^64 ceiling.
		return -two64 * math.Log(1-est/two64)
	}
}

// alpha returns the bias correction constant for m registers.
func alpha(m uint32) float64 {
	switch m {
	case 16:
		return 0.673
	case 32:
		return 0.697
	case 64:
		return 0.709
	}
	return 0.7213 / (1 + 1.079/float64(m))
}

// Merge folds another sketch into s by taking the register-wise maximum,
// yielding the sketch of the union of both observation streams. The two
// sketches must share a precision.
func (s *Sketch) Merge(other *Sketch) error {
	if s.p != other.p {
		return fmt.Errorf("%w: cannot merge precision %d into %d",
			ErrPrecisionRange, other.p, s.p)
	}

	for i, v := range other.reg {
		if v > s.reg[i] {
			s.reg[i] = v
		}
	}

	return nil
}

// Clear resets the sketch to its initial empty state.
func (s *Sketch) Clear() {
	for i := range s.reg {
		s.reg[i] = 0
	}
}

// Precision returns the sketch precision.
func (s *Sketch) Precision() uint8 {
	return s.p
}

// RegisterCount returns the number of registers, 2^precision.
func (s *Sketch) RegisterCount() uint32 {
	return s.m
}

// RelativeError returns the standard error of the sketch, 1.04/sqrt(m).
func (s *Sketch) RelativeError() float64 {
	return 1.04 / math.Sqrt(float64(s.m))
}
