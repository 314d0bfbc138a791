package fleet

import "errors"

var (
	ErrDuplicateCode      = errors.New("duplicate vehicle code")
	ErrDuplicateNumber    = errors.New("duplicate vehicle number")
	ErrNotFound           = errors.New("vehicle not found")
	ErrPositionOutOfRange = errors.New("position out of range")
)
