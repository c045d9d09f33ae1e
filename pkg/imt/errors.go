package imt

import "errors"

var (
	// ErrInvalidDepth is returned when constructing a tree with a depth
	// outside [1, 32].
	ErrInvalidDepth = errors.New("tree depth must be in [1, 32]")

	// ErrTreeFull is returned when inserting into a tree whose leaf
	// capacity is exhausted.
	ErrTreeFull = errors.New("tree is at leaf capacity")

	// ErrDuplicateValue is returned when inserting a value that is already
	// present. The zero value is the linked-list sentinel and always counts
	// as present.
	ErrDuplicateValue = errors.New("value already present in tree")

	// ErrIndexOutOfRange is returned when a leaf index is outside
	// [0, 2^depth).
	ErrIndexOutOfRange = errors.New("leaf index out of range")

	// ErrValueNotFound is returned when proving membership of a value that
	// was never inserted.
	ErrValueNotFound = errors.New("value not present in tree")

	// ErrValuePresent is returned when proving non-membership of a value
	// that is in fact a member.
	ErrValuePresent = errors.New("value is a member of the tree")
)
