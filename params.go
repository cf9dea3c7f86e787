package approx

import "math"

const (
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

// OptimalParams calculates bloom filter parameters for the expected number
// of items and desired false positive rate: the bit array size m and the
// number of hash functions k.
func OptimalParams(expectedItems uint, fpRate float64) (m, k uint) {
	if expectedItems == 0 {
		expectedItems = 1
	}
	if fpRate <= 0 {
		fpRate = 0.0001 // default to 0.01%
	}
	if fpRate >= 1 {
		fpRate = 0.99
	}

	// Optimal bits per item: -ln(fpRate) / ln(2)^2
	bitsPerItem := -math.Log(fpRate) / ln2Squared
	m = uint(math.Ceil(float64(expectedItems) * bitsPerItem))

	// Optimal k: (m/n) * ln(2)
	k = uint(math.Round(bitsPerItem * ln2))
	k = max(k, 1)

	return m, k
}

// EstimateFalsePositiveRate estimates the false positive rate of an m-bit
// filter with k hash functions after itemsAdded insertions.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(m, k uint, itemsAdded uint) float64 {
	if m == 0 || itemsAdded == 0 {
		return 0
	}

	kf := float64(k)
	return math.Pow(1-math.Exp(-kf*float64(itemsAdded)/float64(m)), kf)
}

// Sketch precision bounds. Precision is the number of hash bits used to
// select a register; the sketch holds 2^precision registers.
const (
	MinPrecision uint8 = 4
	MaxPrecision uint8 = 18
)

// precisionForErrorRate derives the sketch precision that achieves the
// requested standard error. The relative error of a sketch with m registers
// is 1.04/sqrt(m), so m must be at least (1.04/errorRate)^2.
func precisionForErrorRate(errorRate float64) uint8 {
	p := uint8(math.Ceil(math.Log2(math.Pow(1.04/errorRate, 2))))
	return max(p, MinPrecision)
}
