package lengths

import (
	"strings"
	"testing"
)

func TestHistogram_CountsBytes(t *testing.T) {
	r := strings.NewReader("aaabbc")
	hist, err := Histogram(r)
	if err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}
	if len(hist) != 256 {
		t.Fatalf("expected 256 entries, got %d", len(hist))
	}
	if hist['a'] != 3 || hist['b'] != 2 || hist['c'] != 1 {
		t.Errorf("wrong counts: a=%d b=%d c=%d", hist['a'], hist['b'], hist['c'])
	}
	for i, count := range hist {
		if byte(i) == 'a' || byte(i) == 'b' || byte(i) == 'c' {
			continue
		}
		if count != 0 {
			t.Errorf("byte %d: expected count 0, got %d", i, count)
		}
	}
}

func TestHistogram_Empty(t *testing.T) {
	hist, err := Histogram(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}
	for i, count := range hist {
		if count != 0 {
			t.Errorf("byte %d: expected 0 on empty input, got %d", i, count)
		}
	}
}

func TestHistogram_FeedsDirectlyIntoMoffat(t *testing.T) {
	hist, err := Histogram(strings.NewReader("the quick brown fox jumps over the lazy dog"))
	if err != nil {
		t.Fatalf("Histogram failed: %v", err)
	}
	lengths := make([]byte, 256)
	maxBits := Moffat(256, hist, lengths)
	if maxBits == 0 {
		t.Fatal("expected a nonzero result")
	}
}
