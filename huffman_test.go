package huffman

import (
	"sort"
)

// referenceFrequencies is the frequency set used by most tests.  Its optimal
// weighted code length is 785 bits.
func referenceFrequencies() FrequencyTable {
	return FrequencyTable{
		'C': 32,
		'D': 42,
		'E': 120,
		'K': 7,
		'L': 42,
		'M': 24,
		'U': 37,
		'Z': 2,
	}
}

const referenceCost = 785

// optimalCost computes the weighted code length of an optimal prefix code
// without building a tree: it is the sum of all merged weights.
func optimalCost(ft FrequencyTable) uint64 {
	weights := make([]uint64, 0, len(ft))
	for _, count := range ft {
		weights = append(weights, count)
	}
	switch len(weights) {
	case 0:
		return 0
	case 1:
		return weights[0]
	}
	var cost uint64
	for len(weights) > 1 {
		sort.Slice(weights, func(i, j int) bool { return weights[i] < weights[j] })
		sum := weights[0] + weights[1]
		cost += sum
		weights = append(weights[2:], sum)
	}
	return cost
}
