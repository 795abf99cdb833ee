package lengths

import "testing"

func TestLimitedKraft_SatisfiesKraftInequality(t *testing.T) {
	freq := []uint64{1, 2, 3, 5, 8, 13, 21, 34, 55, 89}
	lengths := make([]byte, len(freq))
	maxBits := LimitedKraft(6, len(freq), freq, lengths)
	if maxBits == 0 {
		t.Fatal("expected a nonzero result")
	}

	var kraft uint64
	one := uint64(1) << maxBits
	for i, l := range lengths {
		if freq[i] == 0 {
			continue
		}
		if l == 0 || l > maxBits {
			t.Fatalf("symbol %d: invalid length %d for maxBits %d", i, l, maxBits)
		}
		kraft += one >> l
	}
	if kraft > one {
		t.Errorf("Kraft sum %d exceeds %d", kraft, one)
	}
}

func TestLimitedKraft_UniformAlphabet(t *testing.T) {
	freq := []uint64{1, 1, 1, 1}
	lengths := make([]byte, 4)
	maxBits := LimitedKraft(8, 4, freq, lengths)
	if maxBits == 0 {
		t.Fatal("expected nonzero result")
	}
	for i, l := range lengths {
		if l == 0 {
			t.Errorf("symbol %d: expected nonzero length", i)
		}
	}
}

func TestLimitedKraft_AllZero(t *testing.T) {
	freq := []uint64{0, 0}
	lengths := []byte{1, 1}
	if got := LimitedKraft(4, 2, freq, lengths); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestLimitedKraft_RejectsInfeasibleLimit(t *testing.T) {
	// 3 used symbols can never fit in 2^1 = 2 leaves: every rounded length
	// immediately clamps to maxLength, which used to make the expansion
	// loop spin forever instead of terminating.
	freq := []uint64{1, 1, 1}
	lengths := make([]byte, 3)
	if got := LimitedKraft(1, 3, freq, lengths); got != 0 {
		t.Fatalf("expected 0 for infeasible maxLength, got %d", got)
	}
	for i, l := range lengths {
		if l != 0 {
			t.Errorf("symbol %d: expected length 0 on refusal, got %d", i, l)
		}
	}
}

func TestLimitedKraft_RejectsBadParams(t *testing.T) {
	freq := []uint64{1}
	lengths := make([]byte, 1)
	if got := LimitedKraft(0, 1, freq, lengths); got != 0 {
		t.Errorf("expected 0 for maxLength=0, got %d", got)
	}
	if got := LimitedKraft(64, 1, freq, lengths); got != 0 {
		t.Errorf("expected 0 for maxLength=64, got %d", got)
	}
}
