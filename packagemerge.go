package lengths

// pmCoin is an item in a package-merge coin list: either a leaf (a single
// original symbol, identified by its rank in the ascending-sorted weight
// array) or a package formed by pairing two coins from the list one level
// up.
type pmCoin struct {
	cost        uint64
	leaf        int
	left, right *pmCoin
}

// PackageMerge computes optimal length-limited prefix-code lengths for a
// frequency histogram using the coin-collector construction (the standard
// Package-Merge algorithm): it treats assigning a length-limited code as
// collecting 2M-2 coins of minimal total cost from L denominations, where M
// is the number of used symbols.
//
// Returns 0 if 2^maxLength is smaller than the number of used symbols (no
// length-limited prefix code can exist), or if every frequency is zero.
func PackageMerge(maxLength byte, numSymbols int, freq []uint64, codeLengths []byte) byte {
	if maxLength == 0 || maxLength > 63 {
		for i := range codeLengths[:numSymbols] {
			codeLengths[i] = 0
		}
		return 0
	}

	mapping := sortAndFilter(numSymbols, freq, codeLengths)
	if mapping == nil {
		return 0
	}
	m := len(mapping)

	if uint64(m) > packageMergeCapacity(maxLength) {
		return 0
	}

	sortedWeights := make([]uint64, m)
	for i, e := range mapping {
		sortedWeights[i] = e.freq
	}

	sortedLengths := packageMergeSortedInPlace(maxLength, sortedWeights)
	if sortedLengths == nil {
		return 0
	}

	scatter(mapping, sortedLengths, codeLengths)
	return observedMax(codeLengths)
}

// packageMergeCapacity returns 2^l, the number of distinct codewords a
// prefix code of maximum length l can hold.
func packageMergeCapacity(l byte) uint64 {
	return uint64(1) << l
}

// packageMergeSortedInPlace runs the coin-collector construction over
// ascending weights and returns one code length per weight, in the same
// order as the input.  Unlike MoffatSortedInPlace, input order is preserved
// rather than reversed, since each coin remembers the rank it was built
// from.
func packageMergeSortedInPlace(maxLength byte, weights []uint64) []byte {
	m := len(weights)
	if m == 0 {
		return nil
	}
	if m == 1 {
		return []byte{1}
	}

	limit := 2 * (m - 1)

	// list holds the coins at the level currently being built, always
	// kept sorted ascending by cost and truncated to the cheapest
	// `limit` entries: a coin that doesn't survive that truncation can
	// never belong to an optimal final selection, so keeping it around
	// for the next level is dead weight.
	var list []*pmCoin
	for level := int(maxLength); level >= 1; level-- {
		var packages []*pmCoin
		for i := 0; i+1 < len(list); i += 2 {
			packages = append(packages, &pmCoin{cost: list[i].cost + list[i+1].cost, left: list[i], right: list[i+1]})
		}

		singles := make([]*pmCoin, m)
		for i := 0; i < m; i++ {
			singles[i] = &pmCoin{cost: weights[i], leaf: i}
		}

		merged := mergeCoinsByCost(singles, packages)
		if len(merged) > limit {
			merged = merged[:limit]
		}
		list = merged
	}

	if len(list) < limit {
		// maxLength was too small for this alphabet; the caller should
		// have caught this via packageMergeCapacity, but guard anyway.
		return nil
	}

	codeLen := make([]byte, m)
	for _, coin := range list[:limit] {
		addLeafCounts(coin, codeLen)
	}
	return codeLen
}

// mergeCoinsByCost merges two ascending-by-cost coin slices into one
// ascending slice, preferring singles over packages on ties so that
// tie-breaking is stable and deterministic.
func mergeCoinsByCost(singles, packages []*pmCoin) []*pmCoin {
	out := make([]*pmCoin, 0, len(singles)+len(packages))
	i, j := 0, 0
	for i < len(singles) && j < len(packages) {
		if singles[i].cost <= packages[j].cost {
			out = append(out, singles[i])
			i++
		} else {
			out = append(out, packages[j])
			j++
		}
	}
	out = append(out, singles[i:]...)
	out = append(out, packages[j:]...)
	return out
}

// addLeafCounts increments codeLen for every leaf symbol reachable from
// coin.  Iterative, per the "no recursion" guidance for these kernels: a
// coin's own depth in the package-merge construction already bounds the
// work, so an explicit stack keeps it that way.
func addLeafCounts(coin *pmCoin, codeLen []byte) {
	stack := []*pmCoin{coin}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if c.left == nil {
			codeLen[c.leaf]++
			continue
		}
		stack = append(stack, c.left, c.right)
	}
}
