package approx

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestFilterBasic(t *testing.T) {
	f := NewFilter(1000, 3)

	for _, item := range []string{"hello", "world", "foo"} {
		if err := f.Add(item); err != nil {
			t.Fatalf("Add(%q) returned error: %v", item, err)
		}
	}

	for _, item := range []string{"hello", "world", "foo"} {
		ok, err := f.Contains(item)
		if err != nil {
			t.Fatalf("Contains(%q) returned error: %v", item, err)
		}
		if !ok {
			t.Errorf("expected %q to be present", item)
		}
	}

	if ok, _ := f.Contains("notpresent"); ok {
		t.Log("warning: false positive for 'notpresent'")
	}
}

func TestFilterRejectsEmptyItem(t *testing.T) {
	f := NewFilter(1000, 3)

	if err := f.Add(""); !errors.Is(err, ErrInvalidItem) {
		t.Errorf("Add(\"\") = %v, want ErrInvalidItem", err)
	}
	if _, err := f.Contains(""); !errors.Is(err, ErrInvalidItem) {
		t.Errorf("Contains(\"\") = %v, want ErrInvalidItem", err)
	}

	// The rejected item must leave the filter untouched.
	if f.FillRatio() != 0 {
		t.Errorf("expected empty filter after rejected Add, fill ratio %f", f.FillRatio())
	}
}

func TestFilterNoFalseNegatives(t *testing.T) {
	f := NewFilterOptimal(5000, 0.01)

	for i := 0; i < 5000; i++ {
		if err := f.Add(fmt.Sprintf("item-%d", i)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	var missing int
	for i := 0; i < 5000; i++ {
		ok, err := f.Contains(fmt.Sprintf("item-%d", i))
		if err != nil {
			t.Fatalf("Contains failed: %v", err)
		}
		if !ok {
			missing++
		}
	}

	if missing > 0 {
		t.Errorf("expected all items to be present, but %d were missing", missing)
	}
}

func TestFilterIdempotentAdd(t *testing.T) {
	once := NewFilter(1000, 3)
	twice := NewFilter(1000, 3)

	if err := once.Add("password123"); err != nil {
		t.Fatal(err)
	}
	for n := 0; n < 2; n++ {
		if err := twice.Add("password123"); err != nil {
			t.Fatal(err)
		}
	}

	if !once.equal(twice) {
		t.Error("adding an item twice produced a different bit array than adding it once")
	}
}

func TestFilterFalsePositiveRate(t *testing.T) {
	expectedItems := uint(10000)
	targetFPRate := 0.01 // 1%

	f := NewFilterOptimal(expectedItems, targetFPRate)

	for i := uint(0); i < expectedItems; i++ {
		if err := f.Add(fmt.Sprintf("item-%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	// Query items never added and count false positives.
	testItems := uint(10000)
	var falsePositives uint
	for i := uint(0); i < testItems; i++ {
		ok, err := f.Contains(fmt.Sprintf("notitem-%d", i))
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			falsePositives++
		}
	}

	actualFPRate := float64(falsePositives) / float64(testItems)

	// Allow 2x margin for statistical variance
	if actualFPRate > targetFPRate*2 {
		t.Errorf("false positive rate too high: got %.4f, want <= %.4f", actualFPRate, targetFPRate*2)
	}

	t.Logf("FP rate: %.4f (target: %.4f, m=%d, k=%d)", actualFPRate, targetFPRate, f.Cap(), f.K())
}

func TestFilterClampsZeroParams(t *testing.T) {
	f := NewFilter(0, 0)
	if f.Cap() != 1 {
		t.Errorf("Cap() = %d, want 1", f.Cap())
	}
	if f.K() != 1 {
		t.Errorf("K() = %d, want 1", f.K())
	}
}

func TestFilterFillRatio(t *testing.T) {
	f := NewFilterOptimal(1000, 0.01)

	if f.FillRatio() != 0 {
		t.Errorf("expected 0 fill ratio for empty filter, got %f", f.FillRatio())
	}

	for i := 0; i < 500; i++ {
		if err := f.Add(fmt.Sprintf("item-%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	ratio := f.FillRatio()
	if ratio <= 0 || ratio >= 1 {
		t.Errorf("expected fill ratio between 0 and 1, got %f", ratio)
	}

	t.Logf("Fill ratio after 500 items: %.4f", ratio)
}

func TestFilterEstimatedFalsePositiveRate(t *testing.T) {
	f := NewFilterOptimal(1000, 0.01)

	if f.EstimatedFalsePositiveRate() != 0 {
		t.Error("expected 0 FP rate for empty filter")
	}

	for i := 0; i < 1000; i++ {
		if err := f.Add(fmt.Sprintf("item-%d", i)); err != nil {
			t.Fatal(err)
		}
	}

	fpRate := f.EstimatedFalsePositiveRate()
	if fpRate <= 0 || fpRate >= 1 {
		t.Errorf("expected FP rate between 0 and 1, got %f", fpRate)
	}

	t.Logf("Estimated FP rate at capacity: %.4f", fpRate)
}

func TestOptimalParams(t *testing.T) {
	tests := []struct {
		items  uint
		fpRate float64
		wantK  uint
	}{
		{1000, 0.01, 7},    // 1% FP rate -> k~7
		{10000, 0.001, 10}, // 0.1% FP rate -> k~10
		{100000, 0.0001, 13},
	}

	for _, tt := range tests {
		m, k := OptimalParams(tt.items, tt.fpRate)
		t.Logf("items=%d, fpRate=%.4f -> m=%d, k=%d", tt.items, tt.fpRate, m, k)

		if k != tt.wantK {
			t.Errorf("items=%d fpRate=%.4f: k=%d, want %d", tt.items, tt.fpRate, k, tt.wantK)
		}
		if m == 0 {
			t.Errorf("items=%d fpRate=%.4f: m=0", tt.items, tt.fpRate)
		}
	}
}

func TestOptimalParamsEdgeCases(t *testing.T) {
	// Zero items defaults to one item.
	m, k := OptimalParams(0, 0.01)
	if m == 0 || k == 0 {
		t.Error("expected non-zero params for 0 items")
	}

	// Out-of-range rates fall back to sane defaults.
	for _, fpRate := range []float64{0, -0.1, 1.0, 2.0} {
		m, k = OptimalParams(1000, fpRate)
		if m == 0 || k == 0 {
			t.Errorf("expected non-zero params for fpRate=%v", fpRate)
		}
	}
}

func TestEstimateFalsePositiveRate(t *testing.T) {
	m := uint(100000)
	k := uint(7)
	items := uint(10000)

	estimated := EstimateFalsePositiveRate(m, k, items)

	// Manual calculation: (1 - e^(-kn/m))^k
	kf := float64(k)
	expected := math.Pow(1-math.Exp(-kf*float64(items)/float64(m)), kf)

	if math.Abs(estimated-expected) > 0.0001 {
		t.Errorf("estimated=%f, expected=%f", estimated, expected)
	}

	if rate := EstimateFalsePositiveRate(m, k, 0); rate != 0 {
		t.Errorf("expected 0 FP rate for 0 items, got %f", rate)
	}
	if rate := EstimateFalsePositiveRate(0, k, items); rate != 0 {
		t.Errorf("expected 0 FP rate for 0 bits, got %f", rate)
	}
}
