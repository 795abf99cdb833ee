package lengths

import "sort"

// freqAndIndex pairs a symbol's frequency with its original index, the way
// original_source/moffat.c's "struct KeyValue" pairs a histogram count with
// the symbol it belongs to before sorting.
type freqAndIndex struct {
	freq  uint64
	index int
}

// byAscendingFreq sorts freqAndIndex ascending by frequency, breaking ties
// by original index so that sortAndFilter is deterministic within one call.
type byAscendingFreq []freqAndIndex

func (s byAscendingFreq) Len() int      { return len(s) }
func (s byAscendingFreq) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s byAscendingFreq) Less(i, j int) bool {
	a, b := s[i], s[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.index < b.index
}

// sortAndFilter extracts the non-zero entries of freq, pairs each with its
// original index, and sorts the result ascending by frequency.  It also
// zeroes codeLengths for every symbol up front, matching the contract that
// unused positions in the output are pre-zeroed (spec.md 4.1).
func sortAndFilter(numSymbols int, freq []uint64, codeLengths []byte) []freqAndIndex {
	for i := 0; i < numSymbols; i++ {
		codeLengths[i] = 0
	}

	mapping := make([]freqAndIndex, 0, numSymbols)
	for i := 0; i < numSymbols; i++ {
		if freq[i] != 0 {
			mapping = append(mapping, freqAndIndex{freq: freq[i], index: i})
		}
	}
	if len(mapping) == 0 {
		return nil
	}

	sort.Sort(byAscendingFreq(mapping))
	return mapping
}

// scatter writes sorted per-rank lengths back to their original symbol
// positions using the mapping produced by sortAndFilter.
func scatter(mapping []freqAndIndex, sortedLengths []byte, codeLengths []byte) {
	for i, m := range mapping {
		codeLengths[m.index] = sortedLengths[i]
	}
}

// observedMax scans codeLengths and returns the maximum value seen.
func observedMax(codeLengths []byte) byte {
	var max byte
	for _, l := range codeLengths {
		if l > max {
			max = l
		}
	}
	return max
}
