package eir

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrRepeatedFlag is returned when a buffer carries more than one
	// flags block.
	ErrRepeatedFlag = errors.New("more than one flags block")

	// ErrRepeatedName is returned when a buffer carries more than one
	// local name block, counting short and complete names together.
	ErrRepeatedName = errors.New("more than one name block")

	// ErrInvalidText is reserved for text-bearing data types that require
	// validated encoding (URI).
	ErrInvalidText = errors.New("invalid text encoding")

	// ErrNotFit means the field doesn't fit into the packet.
	ErrNotFit = errors.New("field does not fit into the packet")
)

// UnexpectedDataLengthError reports a payload whose byte count violates the
// size constraint of its data type.
type UnexpectedDataLengthError struct {
	Len int
}

func (e *UnexpectedDataLengthError) Error() string {
	return fmt.Sprintf("unexpected data length %d", e.Len)
}
