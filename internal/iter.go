package internal

import (
	"cmp"
	"iter"
	"slices"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// IterSeq2Sorted yields the pairs of seq in key order. Later duplicates of
// a key are dropped.
func IterSeq2Sorted[K cmp.Ordered, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		vals := map[K]V{}
		var keys []K
		for key, val := range seq {
			if _, ok := vals[key]; ok {
				continue
			}
			vals[key] = val
			keys = append(keys, key)
		}

		slices.Sort(keys)
		for _, key := range keys {
			if !yield(key, vals[key]) {
				return
			}
		}
	}
}
