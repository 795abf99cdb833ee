package lengths

import "testing"

func TestMoffatSortedInPlace_S3(t *testing.T) {
	weights := []uint64{1, 1, 2, 5}
	maxBits := MoffatSortedInPlace(weights)
	if maxBits != 3 {
		t.Fatalf("expected maxBits 3, got %d", maxBits)
	}

	total := 0
	orig := []uint64{1, 1, 2, 5}
	for i, length := range weights {
		total += int(orig[i]) * int(length)
	}
	if total != 1*3+1*3+2*2+5*1 {
		t.Errorf("unexpected weighted total %d", total)
	}
}

func TestMoffatSortedInPlace_SingleElement(t *testing.T) {
	weights := []uint64{99}
	maxBits := MoffatSortedInPlace(weights)
	if maxBits != 1 || weights[0] != 1 {
		t.Fatalf("expected single-symbol length 1, got maxBits=%d weights=%v", maxBits, weights)
	}
}

func TestMoffatSortedInPlace_Empty(t *testing.T) {
	if got := MoffatSortedInPlace(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %d", got)
	}
}

func TestMoffat_S2Uniform(t *testing.T) {
	freq := []uint64{1, 1, 1, 1}
	lengths := make([]byte, 4)
	maxBits := Moffat(4, freq, lengths)
	if maxBits != 2 {
		t.Fatalf("expected maxBits 2, got %d", maxBits)
	}
	for i, l := range lengths {
		if l != 2 {
			t.Errorf("symbol %d: expected length 2, got %d", i, l)
		}
	}
}

func TestMoffat_S1SingleSymbol(t *testing.T) {
	freq := []uint64{7}
	lengths := make([]byte, 1)
	maxBits := Moffat(1, freq, lengths)
	if maxBits != 1 || lengths[0] != 1 {
		t.Fatalf("expected len=[1] maxBits=1, got lengths=%v maxBits=%d", lengths, maxBits)
	}
}

func TestMoffat_AllZero(t *testing.T) {
	freq := []uint64{0, 0, 0}
	lengths := []byte{9, 9, 9}
	maxBits := Moffat(3, freq, lengths)
	if maxBits != 0 {
		t.Fatalf("expected 0, got %d", maxBits)
	}
	for _, l := range lengths {
		if l != 0 {
			t.Errorf("expected zeroed output, got %v", lengths)
		}
	}
}

func TestMoffat_SkipsUnusedSymbols(t *testing.T) {
	freq := []uint64{0, 5, 0, 3, 2}
	lengths := make([]byte, 5)
	Moffat(5, freq, lengths)
	if lengths[0] != 0 || lengths[2] != 0 {
		t.Fatalf("expected unused symbols to stay zero, got %v", lengths)
	}
	if lengths[1] == 0 || lengths[3] == 0 || lengths[4] == 0 {
		t.Fatalf("expected used symbols to get a length, got %v", lengths)
	}
}
