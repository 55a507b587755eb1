// Copyright (c) 2026 Neomantra Corp

package xbf

import "fmt"

// Sentinel errors distinguishing the wire-error/construction-error kinds
// the core must surface (spec.md §7). Wrapped with fmt.Errorf/%w at each
// propagation boundary rather than collected into a custom error type
// hierarchy.
var (
	ErrInvalidDiscriminant = fmt.Errorf("invalid discriminant")
	ErrInvalidUtf8         = fmt.Errorf("invalid utf-8")
	ErrInvalidLength       = fmt.Errorf("invalid length")
	ErrNotHomogeneous      = fmt.Errorf("vector elements are not homogeneous")
	ErrFieldCountMismatch  = fmt.Errorf("field count mismatch")
	ErrFieldTypeMismatch   = fmt.Errorf("field type mismatch")
	ErrDuplicateFieldName  = fmt.Errorf("duplicate field name")
	ErrFieldNotFound       = fmt.Errorf("field not found")
)

func unknownDiscriminantError(got byte) error {
	return fmt.Errorf("%w: Unknown metadata discriminant %d", ErrInvalidDiscriminant, got)
}

func notHomogeneousError(index int, want, got Metadata) error {
	return fmt.Errorf("%w: element %d has metadata %v, want %v", ErrNotHomogeneous, index, got, want)
}

func fieldCountMismatchError(want, got int) error {
	return fmt.Errorf("%w: expected %d fields, got %d", ErrFieldCountMismatch, want, got)
}

func fieldTypeMismatchError(name string, want, got Metadata) error {
	return fmt.Errorf("%w: field %q expected metadata %v, got %v", ErrFieldTypeMismatch, name, want, got)
}

func duplicateFieldNameError(name string, first, second Metadata) error {
	return fmt.Errorf("%w: %q already declared with metadata %v, got %v", ErrDuplicateFieldName, name, first, second)
}
