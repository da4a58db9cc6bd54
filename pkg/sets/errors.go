package sets

import errors "gopkg.in/src-d/go-errors.v1"

/*
Returned when two sets are ordered by containment but neither one contains the other.
Seeing it means the caller sorted a collection that is not a chain, see IsLinear.
*/
var ErrIncomparable = errors.NewKind("sets %s and %s are incomparable under containment")
