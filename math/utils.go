package math

import (
	"cmp"
	"sort"
)

// CalcExpDecay returns current - current*decayFactor, floored.
//
// Applied once per economic year it yields
// rate_n = rate_0 * (1 - decayFactor)^n
// and it is monotonically non-increasing for any decayFactor in [0, 1].
func CalcExpDecay(current, decayFactor Perbill) Perbill {
	return current.SaturatingSub(current.Mul(decayFactor))
}

// Generic function that sorts the keys of a map
// Used for deterministic ranging of maps
func GetSortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
