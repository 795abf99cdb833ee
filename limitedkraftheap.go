package lengths

import "container/heap"

// LimitedKraftHeap is LimitedKraft with the linear rescan replaced by a
// max-heap keyed on each symbol's current gain (entropy minus its rounded
// length): the symbol most "owed" an extra bit is always extended next,
// which reaches a satisfied Kraft sum in fewer passes over the alphabet for
// large inputs, at the cost of heap bookkeeping.
//
// Returns 0 if numSymbols is 0, every frequency is zero, or maxLength is 0
// or greater than 63.
func LimitedKraftHeap(maxLength byte, numSymbols int, freq []uint64, codeLengths []byte) byte {
	if maxLength == 0 || maxLength > 63 || numSymbols == 0 {
		return 0
	}

	var sumHistogram uint64
	var numUsed uint64
	for i := 0; i < numSymbols; i++ {
		sumHistogram += freq[i]
		if freq[i] != 0 {
			numUsed++
		}
	}
	if sumHistogram == 0 {
		for i := 0; i < numSymbols; i++ {
			codeLengths[i] = 0
		}
		return 0
	}

	// Mirrors PackageMerge's packageMergeCapacity guard: if there aren't
	// 2^maxLength leaves to go around, every symbol's rounded length gets
	// clamped to maxLength and nothing is ever pushed to h, leaving the pop
	// loop below to run against an empty heap.
	if numUsed > uint64(1)<<maxLength {
		for i := 0; i < numSymbols; i++ {
			codeLengths[i] = 0
		}
		return 0
	}

	invSumHistogram := 1.0 / float32(sumHistogram)

	one := uint64(1) << maxLength
	var spent uint64

	h := make(kraftMaxHeap, 0, numSymbols)

	for i := 0; i < numSymbols; i++ {
		if freq[i] == 0 {
			codeLengths[i] = 0
			continue
		}

		entropy := -fastlog2(float32(freq[i]) * invSumHistogram)
		rounded := byte(entropy + 0.5)
		if rounded == 0 {
			rounded = 1
		}
		if rounded > maxLength {
			rounded = maxLength
		}

		codeLengths[i] = rounded
		spent += one >> rounded

		if rounded < maxLength {
			heap.Push(&h, kraftHeapItem{gain: entropy - float32(rounded), index: i})
		}
	}

	for spent > one && h.Len() > 0 {
		top := heap.Pop(&h).(kraftHeapItem)
		i := top.index

		if codeLengths[i] == 0 || codeLengths[i] >= maxLength {
			continue
		}

		codeLengths[i]++
		spent -= one >> codeLengths[i]
		if spent <= one {
			break
		}

		heap.Push(&h, kraftHeapItem{gain: top.gain - 1, index: i})
	}

	for spent < one && h.Len() > 0 {
		top := heap.Pop(&h).(kraftHeapItem)
		i := top.index

		if codeLengths[i] <= 1 {
			continue
		}

		have := one >> codeLengths[i]
		if one-spent >= have {
			codeLengths[i]--
			spent += have
		}
	}

	return observedMax(codeLengths)
}
