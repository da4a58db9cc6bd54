/*
Package sets provides the set algebra used to reason about collections of sets
ordered by containment.
None of the operations mutate their inputs. Operations producing a set always
return a newly allocated one.
*/
package sets

import (
	"fmt"
	"strings"

	"gitlab.com/kyle_anderson/go-utils/pkg/iterator"
	"gitlab.com/kyle_anderson/go-utils/pkg/set"
	"golang.org/x/exp/slices"
)

/* Read-only view of a set. Every set.Set satisfies it. */
type ImmutableSet[T any] interface {
	/* Sets should not return errors while being iterated through. */
	iterator.Iterable[T]
	Contains(T) bool
	Size() uint
}

/*
Calls fn with each element of s until fn returns false.
Returns true if every element was visited.
The iterator is always closed, so stopping early does not leak the iteration.
*/
func forEach[T any](s iterator.Iterable[T], fn func(T) bool) bool {
	it := s.It()
	defer it.Close()
	for {
		elem, err := it.Next()
		switch {
		case err == nil:
		case err.IsDone():
			return true
		default:
			/* It is not expected for sets to return real errors during iteration. */
			panic(err)
		}
		if !fn(elem) {
			return false
		}
	}
}

func allOf[T any](s iterator.Iterable[T], predicate func(T) bool) bool {
	return forEach(s, predicate)
}

func anyOf[T any](s iterator.Iterable[T], predicate func(T) bool) bool {
	return !forEach(s, func(elem T) bool { return !predicate(elem) })
}

/* Returns the elements of s in iteration order. */
func Elements[T any](s iterator.Iterable[T]) []T {
	var elements []T
	forEach(s, func(elem T) bool {
		elements = append(elements, elem)
		return true
	})
	return elements
}

type sliceView[T any] []T

func (s sliceView[T]) It() iterator.Iterator[T] { return iterator.SliceIterator([]T(s)) }

/*
Wraps a slice as an iterable collection. Duplicates are kept, which makes it
suitable for feeding general collections to Difference.
*/
func SliceOf[T any](elements ...T) iterator.Iterable[T] {
	return sliceView[T](elements)
}

/* Returns the set of elements appearing in a or b. */
func Union[T comparable](a, b ImmutableSet[T]) set.Set[T] {
	out := set.NewComparable[T]()
	add := func(elem T) bool {
		out.Add(elem)
		return true
	}
	forEach[T](a, add)
	forEach[T](b, add)
	return out
}

/* Returns the set of elements appearing in both a and b. */
func Intersection[T comparable](a, b ImmutableSet[T]) set.Set[T] {
	out := set.NewComparable[T]()
	forEach[T](a, func(elem T) bool {
		if b.Contains(elem) {
			out.Add(elem)
		}
		return true
	})
	return out
}

/*
Returns the set of elements of a that are not in b.
Both arguments may be any iterable collection, duplicates in either one do not
affect the result.
*/
func Difference[T comparable](a, b iterator.Iterable[T]) set.Set[T] {
	exclude := membership(b)
	out := set.NewComparable[T]()
	forEach(a, func(elem T) bool {
		if !exclude.Contains(elem) {
			out.Add(elem)
		}
		return true
	})
	return out
}

/* Gives constant time membership tests over s, copying it only if it is not already a set. */
func membership[T comparable](s iterator.Iterable[T]) ImmutableSet[T] {
	if immutable, ok := s.(ImmutableSet[T]); ok {
		return immutable
	}
	out := set.NewComparable[T]()
	forEach(s, func(elem T) bool {
		out.Add(elem)
		return true
	})
	return out
}

/* Returns true if s1 is a subset of s2. Every set is a subset of itself. */
func IsSubset[T comparable](s1, s2 ImmutableSet[T]) bool {
	if s1.Size() > s2.Size() {
		return false
	}
	return allOf[T](s1, s2.Contains)
}

/* Returns true if s1 is a subset of s2 and the two are not equal. */
func IsProperSubset[T comparable](s1, s2 ImmutableSet[T]) bool {
	return s1.Size() < s2.Size() && allOf[T](s1, s2.Contains)
}

/* Returns true if s1 and s2 have exactly the same elements. */
func Equals[T comparable](s1, s2 ImmutableSet[T]) bool {
	return s1.Size() == s2.Size() && IsSubset(s1, s2)
}

/* Returns true if a and b share at least one element. Stops at the first shared element of a. */
func DoIntersect[T comparable](a, b ImmutableSet[T]) bool {
	return anyOf[T](a, b.Contains)
}

/* Formats s as "{e1, e2, ...}" with the elements sorted by their printed form. */
func Describe[T any](s iterator.Iterable[T]) string {
	elements := Elements(s)
	printed := make([]string, len(elements))
	for i, elem := range elements {
		printed[i] = fmt.Sprint(elem)
	}
	slices.Sort(printed)
	return "{" + strings.Join(printed, ", ") + "}"
}
