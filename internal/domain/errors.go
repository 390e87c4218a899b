package domain

import "errors"

var (
	// ErrCatalogMiss indicates the requested family/wall combination has no
	// catalog entry. Recoverable: the caller may supply matrices manually.
	ErrCatalogMiss = errors.New("no catalog entry for requested family and wall type")

	// ErrDegenerateTransform indicates a transformation matrix with zero
	// determinant. Fatal for the affected wall-type run.
	ErrDegenerateTransform = errors.New("transformation matrix is degenerate (zero determinant)")

	// ErrIncompatibleStacking indicates the two domains cannot be joined
	// along the requested axis (zero-length or anti-parallel stacking
	// vectors). Fatal for the affected wall-type run.
	ErrIncompatibleStacking = errors.New("domains are incompatible along the stacking axis")

	// ErrZeroLengthVector indicates a degenerate reference lattice vector
	// reached a computation that requires a non-zero length.
	ErrZeroLengthVector = errors.New("zero-length lattice vector")
)
