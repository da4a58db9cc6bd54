/*
Package lattice answers structural questions about a collection of sets ordered
by containment: its maximum, its maximal and minimal members, and how deep the
order goes below the maximum.
Absent results are reported with a false ok value rather than an error.
*/
package lattice

import (
	"gitlab.com/kyle_anderson/go-utils/pkg/set"

	"gitlab.com/kyle_anderson/setlattice/pkg/sets"
)

/*
Returns the set of the collection that contains every other set of the collection, if there is one.
Such a set is unique up to equality; the first one in the collection is returned.
*/
func Maximum[T comparable](collection []set.Set[T]) (maximum set.Set[T], ok bool) {
	if i, found := maximumIndex(collection); found {
		return collection[i], true
	}
	return nil, false
}

func maximumIndex[T comparable](collection []set.Set[T]) (int, bool) {
	for i, candidate := range collection {
		if IsSupersetOfAll(candidate, collection) {
			return i, true
		}
	}
	return -1, false
}

/* Returns true if s contains every set of the pool. */
func IsSupersetOfAll[T comparable](s set.Set[T], pool []set.Set[T]) bool {
	for _, other := range pool {
		if !sets.IsSubset[T](other, s) {
			return false
		}
	}
	return true
}

/*
Returns true if s contains none of the sets of the pool.
Since the empty set is contained in every set, a pool holding it always gives false.
*/
func IsSupersetOfNone[T comparable](s set.Set[T], pool []set.Set[T]) bool {
	for _, other := range pool {
		if sets.IsSubset[T](other, s) {
			return false
		}
	}
	return true
}

/*
Returns a minimal set of the collection: one that contains none of the other sets.
Sets equal to the candidate do not count as other sets.
When several sets are minimal, any of them may be returned.
*/
func AnyMinimal[T comparable](collection []set.Set[T]) (minimal set.Set[T], ok bool) {
	for _, candidate := range collection {
		if IsSupersetOfNone(candidate, othersThan(candidate, collection)) {
			return candidate, true
		}
	}
	return nil, false
}

/* Returns the sets of the collection that are not equal to s. */
func othersThan[T comparable](s set.Set[T], collection []set.Set[T]) []set.Set[T] {
	others := make([]set.Set[T], 0, len(collection))
	for _, other := range collection {
		if !sets.Equals[T](s, other) {
			others = append(others, other)
		}
	}
	return others
}

/* Returns true if no set of the collection properly contains s. Equal sets are ignored. */
func IsMaximal[T comparable](s set.Set[T], collection []set.Set[T]) bool {
	for _, other := range collection {
		if sets.IsProperSubset[T](s, other) {
			return false
		}
	}
	return true
}

/*
Returns every maximal set of the collection, in collection order.
Unlike the maximum, there may be several of these. Duplicates are kept.
*/
func Maximal[T comparable](collection []set.Set[T]) []set.Set[T] {
	var maximal []set.Set[T]
	for _, s := range collection {
		if IsMaximal(s, collection) {
			maximal = append(maximal, s)
		}
	}
	return maximal
}
