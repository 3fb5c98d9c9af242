package trellis

import (
	"errors"
	"fmt"
)

// ErrUnsupportedGeometry is returned when a geometry test is asked to handle
// a Geometry implementation it has no pairwise test for. Reporting it as
// an error keeps an unknown shape from reading as "no overlap".
var ErrUnsupportedGeometry = errors.New("trellis: unsupported geometry combination")

func unsupportedPair(a, b Geometry) error {
	return fmt.Errorf("overlap %T with %T: %w", a, b, ErrUnsupportedGeometry)
}
