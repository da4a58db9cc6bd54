package sets

import (
	"gitlab.com/kyle_anderson/go-utils/pkg/set"
	"golang.org/x/exp/slices"
)

/*
Compares two sets by containment.
Returns 0 if the sets are equal, a negative number if a is a proper subset of b
and a positive number if b is a proper subset of a.
If neither contains the other the order is undefined and an ErrIncomparable error is returned.
*/
func Compare[T comparable](a, b ImmutableSet[T]) (int, error) {
	switch {
	case Equals(a, b):
		return 0, nil
	case IsSubset(a, b):
		return -1, nil
	case IsSubset(b, a):
		return 1, nil
	default:
		return 0, ErrIncomparable.New(Describe[T](a), Describe[T](b))
	}
}

/*
Returns the containment order as a comparator.
It is only a total order over chains, callers should check IsLinear before sorting with it.
*/
func SubsetOrder[T comparable]() func(a, b set.Set[T]) (int, error) {
	return func(a, b set.Set[T]) (int, error) {
		return Compare[T](a, b)
	}
}

/*
Sorts chain in place from the smallest set to the largest.
Returns the first ErrIncomparable met while sorting if chain is not linear,
in which case the resulting order is unspecified.
*/
func SortChain[T comparable](chain []set.Set[T]) (err error) {
	order := SubsetOrder[T]()
	slices.SortStableFunc(chain, func(a, b set.Set[T]) bool {
		cmp, cmpErr := order(a, b)
		if cmpErr != nil {
			if err == nil {
				err = cmpErr
			}
			return false
		}
		return cmp < 0
	})
	return
}

/* Returns true if every pair of sets in the collection is comparable by containment. */
func IsLinear[T comparable](collection []set.Set[T]) bool {
	for i, a := range collection {
		for _, b := range collection[i+1:] {
			if !IsSubset[T](a, b) && !IsSubset[T](b, a) {
				return false
			}
		}
	}
	return true
}
