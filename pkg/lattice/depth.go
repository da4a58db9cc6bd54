package lattice

import (
	"github.com/sirupsen/logrus"
	"gitlab.com/kyle_anderson/go-utils/pkg/set"

	"gitlab.com/kyle_anderson/setlattice/pkg/sets"
)

type depthConfig struct {
	memo   bool
	logger logrus.FieldLogger
}

type DepthOption func(*depthConfig)

/*
Disables caching of heights, so shared subsets are explored again from every set containing them.
The result does not change, only the running time, which can grow exponentially.
*/
func WithoutMemo() DepthOption {
	return func(c *depthConfig) { c.memo = false }
}

/* Reports each computation at debug level to the given logger. */
func WithLogger(logger logrus.FieldLogger) DepthOption {
	return func(c *depthConfig) { c.logger = logger }
}

/*
Computes the depth of the containment order of the collection: the number of steps in the
longest strictly decreasing chain starting at the maximum set.
A set with no proper subset in the collection has height 0, any other set is one higher than
the highest of its proper subsets.
Returns an ErrNoMaximum error if the collection has no maximum, since the depth is then undefined.
*/
func Depth[T comparable](collection []set.Set[T], opts ...DepthOption) (int, error) {
	config := depthConfig{memo: true}
	for _, opt := range opts {
		opt(&config)
	}
	top, ok := maximumIndex(collection)
	if !ok {
		if config.logger != nil {
			config.logger.WithField("sets", len(collection)).Debug("lattice.Depth: no maximum set")
		}
		return 0, ErrNoMaximum.New(len(collection))
	}
	calc := newHeightCalculator(collection, config.memo)
	depth := calc.height(top)
	if config.logger != nil {
		config.logger.WithFields(logrus.Fields{
			"sets":   len(collection),
			"depth":  depth,
			"visits": calc.visits,
			"memo":   config.memo,
		}).Debug("lattice.Depth: computed depth")
	}
	return depth, nil
}

type heightCalculator[T comparable] struct {
	collection []set.Set[T]
	/* Known heights by collection index, -1 when not computed yet. Nil when caching is disabled. */
	heights []int
	/* Number of height evaluations performed. */
	visits uint
}

func newHeightCalculator[T comparable](collection []set.Set[T], memo bool) *heightCalculator[T] {
	calc := &heightCalculator[T]{collection: collection}
	if memo {
		calc.heights = make([]int, len(collection))
		for i := range calc.heights {
			calc.heights[i] = -1
		}
	}
	return calc
}

/* Proper subsets are strictly smaller, so the recursion always terminates. */
func (c *heightCalculator[T]) height(i int) int {
	if c.heights != nil && c.heights[i] >= 0 {
		return c.heights[i]
	}
	c.visits++
	result := 0
	for j, child := range c.collection {
		if sets.IsProperSubset[T](child, c.collection[i]) {
			if childHeight := c.height(j) + 1; childHeight > result {
				result = childHeight
			}
		}
	}
	if c.heights != nil {
		c.heights[i] = result
	}
	return result
}
