package lengths

import (
	"reflect"
	"testing"
)

func TestLimitedJPEGInPlace_S4(t *testing.T) {
	bits := []uint64{0, 1, 1, 1, 1, 2}
	got := LimitedJPEGInPlace(4, 5, bits)
	want := []uint64{0, 1, 1, 0, 4, 0}
	if got != 4 {
		t.Errorf("expected return value 4, got %d", got)
	}
	if !reflect.DeepEqual(bits, want) {
		t.Errorf("wrong histogram:\n\texpect: %v\n\tactual: %v", want, bits)
	}
}

func TestLimitedJPEGInPlace_S5(t *testing.T) {
	bits := []uint64{0, 1, 1, 1, 1, 2}
	got := LimitedJPEGInPlace(3, 5, bits)
	want := []uint64{0, 0, 2, 4, 0, 0}
	if got != 3 {
		t.Errorf("expected return value 3, got %d", got)
	}
	if !reflect.DeepEqual(bits, want) {
		t.Errorf("wrong histogram:\n\texpect: %v\n\tactual: %v", want, bits)
	}
}

func TestLimitedJPEGInPlace_NoopWhenAlreadyShortEnough(t *testing.T) {
	bits := []uint64{0, 1, 1, 1, 1, 2}
	got := LimitedJPEGInPlace(5, 5, bits)
	if got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
}

func TestLimitedMinizInPlace_CollapsesAndRebalances(t *testing.T) {
	bits := []uint64{0, 1, 1, 1, 1, 2}
	got := LimitedMinizInPlace(4, 5, bits)
	if got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}

	var total uint64
	for l := 1; l <= 4; l++ {
		total += bits[l] << (4 - l)
	}
	if total > 1<<4 {
		t.Errorf("Kraft sum %d exceeds %d after reduction", total, uint64(1)<<4)
	}

	var count uint64
	for _, v := range bits {
		count += v
	}
	if count != 6 {
		t.Errorf("expected symbol count preserved at 6, got %d", count)
	}
}

func TestLimitedJPEG_FallsBackToMoffatWhenUnconstrained(t *testing.T) {
	freq := []uint64{1, 1, 1, 1}
	lengths := make([]byte, 4)
	maxBits := LimitedJPEG(8, 4, freq, lengths)
	if maxBits != 2 {
		t.Fatalf("expected maxBits 2, got %d", maxBits)
	}
	for i, l := range lengths {
		if l != 2 {
			t.Errorf("symbol %d: expected length 2, got %d", i, l)
		}
	}
}

func TestLimitedMiniz_ReducesWhenNecessary(t *testing.T) {
	freq := []uint64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	lengths := make([]byte, len(freq))
	maxBits := LimitedMiniz(4, len(freq), freq, lengths)
	if maxBits == 0 {
		t.Fatal("expected a valid result, got 0")
	}
	if maxBits > 4 {
		t.Fatalf("expected maxBits <= 4, got %d", maxBits)
	}
	var kraft uint64
	for _, l := range lengths {
		if l == 0 {
			continue
		}
		kraft += uint64(1) << (maxBits - l)
	}
	if kraft > uint64(1)<<maxBits {
		t.Errorf("Kraft sum %d exceeds 2^%d", kraft, maxBits)
	}
}

func TestLimitedJPEG_AllZero(t *testing.T) {
	freq := []uint64{0, 0}
	lengths := []byte{1, 1}
	if got := LimitedJPEG(8, 2, freq, lengths); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
