package lattice

import errors "gopkg.in/src-d/go-errors.v1"

/* Returned by Depth when no set of the collection contains all the others. */
var ErrNoMaximum = errors.NewKind("collection of %d sets has no maximum set")
