package fixcap

import "errors"

var (
	// ErrCapacity is returned when an operation would push the live
	// length past the fixed capacity. The container is left unchanged.
	ErrCapacity = errors.New("fixcap: capacity exceeded")

	// ErrRange is returned by checked access beyond the live length.
	ErrRange = errors.New("fixcap: index out of range")

	// ErrEmpty is returned by Pop on an empty container.
	ErrEmpty = errors.New("fixcap: empty container")
)
