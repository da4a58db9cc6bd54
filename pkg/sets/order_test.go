package sets_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/kyle_anderson/go-utils/pkg/set"

	"gitlab.com/kyle_anderson/setlattice/pkg/sets"
)

func TestCompare(t *testing.T) {
	for testNo, test := range []struct {
		a, b         []int
		expected     int
		incomparable bool
	}{
		{nil, nil, 0, false},
		{[]int{1, 2}, []int{2, 1}, 0, false},
		{nil, []int{1}, -1, false},
		{[]int{1}, []int{1, 2, 3}, -1, false},
		{[]int{1, 2, 3}, []int{3}, 1, false},
		{[]int{1, 2}, []int{3, 4}, 0, true},
		{[]int{1, 2}, []int{2, 3}, 0, true},
	} {
		test := test // Capture
		t.Run(fmt.Sprint("case ", testNo), func(t *testing.T) {
			t.Log("test: ", test)
			cmp, err := sets.SubsetOrder[int]()(of(test.a...), of(test.b...))
			if test.incomparable {
				require.Error(t, err)
				assert.True(t, sets.ErrIncomparable.Is(err), "unexpected error: %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.expected, cmp)
			}
		})
	}

	t.Run("error names both sets", func(t *testing.T) {
		_, err := sets.Compare[int](of(2, 1), of(3))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "{1, 2}")
		assert.Contains(t, err.Error(), "{3}")
	})
}

/* Builds the chain {} ⊂ {0} ⊂ {0, 1} ⊂ ... with length sets. */
func generateChain(length int) []set.Set[int] {
	chain := make([]set.Set[int], length)
	for i := range chain {
		s := set.NewComparable[int]()
		for elem := 0; elem < i; elem++ {
			s.Add(elem)
		}
		chain[i] = s
	}
	return chain
}

func TestSortChain(t *testing.T) {
	t.Run("with chains", func(t *testing.T) {
		r := rand.New(rand.NewSource(-5190))
		for _, length := range []int{0, 1, 2, 5, 17, 64} {
			length := length // Capture
			t.Run(fmt.Sprintf("length %d", length), func(t *testing.T) {
				chain := generateChain(length)
				/* Duplicates are comparable with everything their originals are. */
				if length > 0 {
					chain = append(chain, set.NewComparable(sets.Elements[int](chain[length/2])...))
				}
				r.Shuffle(len(chain), func(i, j int) { chain[i], chain[j] = chain[j], chain[i] })
				require.True(t, sets.IsLinear(chain))

				require.NoError(t, sets.SortChain(chain))
				for i := 1; i < len(chain); i++ {
					assert.True(t, sets.IsSubset[int](chain[i-1], chain[i]), "index %d: %s is not contained in %s",
						i, sets.Describe[int](chain[i-1]), sets.Describe[int](chain[i]))
				}
			})
		}
	})

	t.Run("with incomparable sets", func(t *testing.T) {
		collection := []set.Set[int]{of(1, 2, 3), of(1), of(2)}
		err := sets.SortChain(collection)
		require.Error(t, err)
		assert.True(t, sets.ErrIncomparable.Is(err), "unexpected error: %v", err)
	})
}

func TestIsLinear(t *testing.T) {
	for testNo, test := range []struct {
		collection []set.Set[int]
		expected   bool
	}{
		{nil, true},
		{[]set.Set[int]{of(1, 2)}, true},
		{[]set.Set[int]{of(1, 2, 3), of(1, 2), of(1), of()}, true},
		{[]set.Set[int]{of(1), of(1, 2), of(1), of(1, 2, 3)}, true},
		{[]set.Set[int]{of(1, 2), of(3, 4)}, false},
		{[]set.Set[int]{of(1, 2, 3), of(1), of(2)}, false},
		{[]set.Set[int]{of(), of(1), of(2), of(1, 2)}, false},
	} {
		test := test // Capture
		t.Run(fmt.Sprint("case ", testNo), func(t *testing.T) {
			assert.Equal(t, test.expected, sets.IsLinear(test.collection))
		})
	}

	t.Run("agrees with pairwise containment", func(t *testing.T) {
		r := rand.New(rand.NewSource(9218))
		for testNo := 0; testNo < 100; testNo++ {
			collection := make([]set.Set[int], r.Intn(5))
			for i := range collection {
				collection[i] = generateRandomSet(r, 3)
			}
			expected := true
			for _, x := range collection {
				for _, y := range collection {
					if !sets.IsSubset[int](x, y) && !sets.IsSubset[int](y, x) {
						expected = false
					}
				}
			}
			assert.Equal(t, expected, sets.IsLinear(collection), "case %d", testNo)
		}
	})
}
