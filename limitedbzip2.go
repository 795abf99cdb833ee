package lengths

// LimitedBzip2 computes length-limited prefix-code lengths the way bzip2
// does: run Moffat's unconstrained algorithm, and if the result exceeds
// maxLength, rescale every weight down (roughly halving it, never letting it
// reach zero) and run Moffat again, repeating until the result fits.  It
// converges quickly but sacrifices optimality for that speed.
//
// Uses this library's defaults: weights are divided by 2 each round with no
// extra shift.  Use LimitedBzip2WithParams to match bzip2's historical
// EXTRA_SHIFT=8 behavior or experiment with other divisors.
func LimitedBzip2(maxLength byte, numSymbols int, freq []uint64, codeLengths []byte) byte {
	return LimitedBzip2WithParams(maxLength, numSymbols, freq, codeLengths, 2, 0)
}

// LimitedBzip2WithParams is LimitedBzip2 with the rescaling knobs exposed:
// each round, a weight is rescaled as
//
//	weight = (1 + (weight >> extraShift) / divideBy) << extraShift
//
// bzip2 itself uses divideBy=2 and historically extraShift=8; extraShift=0
// converges more slowly but keeps far more precision in the weights and
// usually produces noticeably shorter expected code length.
func LimitedBzip2WithParams(maxLength byte, numSymbols int, freq []uint64, codeLengths []byte, divideBy uint64, extraShift uint) byte {
	if maxLength == 0 || maxLength > 63 || numSymbols == 0 || divideBy == 0 {
		return 0
	}

	mapping := sortAndFilter(numSymbols, freq, codeLengths)
	if mapping == nil {
		return 0
	}

	sorted := make([]uint64, len(mapping))
	for i, m := range mapping {
		sorted[i] = m.freq
	}

	result := MoffatSortedInPlace(sorted)
	for result > maxLength {
		for i, m := range mapping {
			weight := m.freq
			weight >>= extraShift
			weight = 1 + weight/divideBy
			weight <<= extraShift
			mapping[i].freq = weight
			sorted[i] = weight
		}
		result = MoffatSortedInPlace(sorted)
	}

	sortedLengths := make([]byte, len(sorted))
	for i, v := range sorted {
		sortedLengths[i] = byte(v)
	}
	scatter(mapping, sortedLengths, codeLengths)

	return result
}
