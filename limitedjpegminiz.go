package lengths

// lengthHistogramReducer is the in-place step shared by LimitedJPEGInPlace
// and LimitedMinizInPlace: given a histogram of how many symbols currently
// use each bit length (indices 1..63, index 0 unused), it rewrites that
// histogram so the longest used length is newMaxLength while keeping the
// Kraft sum exactly unchanged.  histNumBits must not have any length above
// oldMaxLength populated, and oldMaxLength must be the true current maximum.
type lengthHistogramReducer func(newMaxLength, oldMaxLength byte, histNumBits []uint64) byte

// LimitedJPEGInPlace reduces a histogram of code lengths to newMaxLength
// using the algorithm described in JPEG Annex K.3: repeatedly take the two
// longest codes sharing a parent, shorten one by reusing their common
// prefix, and lengthen an unrelated shorter code to absorb the other.  Each
// step preserves the Kraft sum exactly, so the result is always a valid
// prefix code, though it is no longer optimal.
//
// histNumBits must be indexed by bit length (histNumBits[0] is unused and
// must be zero) and have at least oldMaxLength+1 entries.  Returns the new
// maximum length, or 0 on invalid input.
func LimitedJPEGInPlace(newMaxLength, oldMaxLength byte, histNumBits []uint64) byte {
	if newMaxLength <= 1 {
		return 0
	}
	if newMaxLength > oldMaxLength {
		return 0
	}
	if newMaxLength == oldMaxLength {
		return newMaxLength
	}

	i := oldMaxLength
	for i > newMaxLength {
		if histNumBits[i] == 0 {
			i--
			continue
		}

		j := i - 2
		for j > 0 && histNumBits[j] == 0 {
			j--
		}

		histNumBits[i] -= 2
		histNumBits[i-1]++

		histNumBits[j+1] += 2
		histNumBits[j]--
	}

	for i > 0 && histNumBits[i] == 0 {
		i--
	}

	return i
}

// LimitedMinizInPlace reduces a histogram of code lengths to newMaxLength
// the way MiniZ's deflate encoder does: every code longer than newMaxLength
// is collapsed straight to newMaxLength, and then the (now too large) Kraft
// sum is walked back down to 1 by repeatedly trading one maximum-length code
// for one extra bit on some shorter code.  Converges faster than the JPEG
// algorithm but reduces more codes on the first pass.
//
// histNumBits must be indexed by bit length (histNumBits[0] is unused and
// must be zero) and have at least oldMaxLength+1 entries.  Returns the new
// maximum length, or 0 on invalid input.
func LimitedMinizInPlace(newMaxLength, oldMaxLength byte, histNumBits []uint64) byte {
	if newMaxLength <= 1 {
		return 0
	}
	if newMaxLength > oldMaxLength {
		return 0
	}
	if newMaxLength == oldMaxLength {
		return newMaxLength
	}

	for i := int(newMaxLength) + 1; i <= int(oldMaxLength); i++ {
		histNumBits[newMaxLength] += histNumBits[i]
		histNumBits[i] = 0
	}

	var total uint64
	for i := int(newMaxLength); i > 0; i-- {
		total += histNumBits[i] << (newMaxLength - byte(i))
	}

	one := uint64(1) << newMaxLength
	for total > one {
		histNumBits[newMaxLength]--

		for i := int(newMaxLength) - 1; i > 0; i-- {
			if histNumBits[i] > 0 {
				histNumBits[i]--
				histNumBits[i+1] += 2
				break
			}
		}

		total--
	}

	return newMaxLength
}

// limitedImpl is the shared driver behind LimitedJPEG and LimitedMiniz: sort
// and filter the histogram, run an unconstrained Moffat pass, and if that
// already respects maxLength, use it as is; otherwise build a length
// histogram and hand it to the given reducer, then scatter the reduced
// lengths back out in the original frequency order.
func limitedImpl(reduce lengthHistogramReducer, maxLength byte, numSymbols int, freq []uint64, codeLengths []byte) byte {
	if maxLength == 0 || maxLength > 63 || numSymbols == 0 {
		return 0
	}

	mapping := sortAndFilter(numSymbols, freq, codeLengths)
	if mapping == nil {
		return 0
	}
	if uint64(len(mapping)) > uint64(1)<<maxLength {
		return 0
	}

	sorted := make([]uint64, len(mapping))
	for i, m := range mapping {
		sorted[i] = m.freq
	}

	maxLengthUnlimited := MoffatSortedInPlace(sorted)

	if maxLengthUnlimited <= maxLength {
		sortedLengths := make([]byte, len(sorted))
		for i, v := range sorted {
			sortedLengths[i] = byte(v)
		}
		scatter(mapping, sortedLengths, codeLengths)
		return maxLengthUnlimited
	}

	if maxLengthUnlimited > 63 {
		return 0
	}

	histNumBits := make([]uint64, 64)
	for _, v := range sorted {
		histNumBits[v]++
	}

	newMax := reduce(maxLength, maxLengthUnlimited, histNumBits)
	if newMax == 0 {
		return 0
	}

	currentLength := newMax
	for _, m := range mapping {
		codeLengths[m.index] = currentLength

		histNumBits[currentLength]--
		for histNumBits[currentLength] == 0 && currentLength > 0 {
			currentLength--
		}
	}

	return newMax
}

// LimitedJPEG computes length-limited prefix-code lengths by running an
// unconstrained Moffat pass and then reducing the result with
// LimitedJPEGInPlace whenever the unconstrained maximum exceeds maxLength.
func LimitedJPEG(maxLength byte, numSymbols int, freq []uint64, codeLengths []byte) byte {
	return limitedImpl(LimitedJPEGInPlace, maxLength, numSymbols, freq, codeLengths)
}

// LimitedMiniz computes length-limited prefix-code lengths by running an
// unconstrained Moffat pass and then reducing the result with
// LimitedMinizInPlace whenever the unconstrained maximum exceeds maxLength.
func LimitedMiniz(maxLength byte, numSymbols int, freq []uint64, codeLengths []byte) byte {
	return limitedImpl(LimitedMinizInPlace, maxLength, numSymbols, freq, codeLengths)
}
