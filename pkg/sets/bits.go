package sets

import "golang.org/x/tools/container/intsets"

/*
Bit-vector analogue of IsSubset: returns true if every position set in a is also set in b.
Positions are dense, caller-assigned indices for the elements. A nil vector is empty.
*/
func BitSubset(a, b *intsets.Sparse) bool {
	switch {
	case a == nil || a.IsEmpty():
		return true
	case b == nil:
		return false
	}
	return a.SubsetOf(b)
}
