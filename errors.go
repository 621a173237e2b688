package jdict

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned by the pop family when the dict has no entries.
	ErrEmpty = errors.New("pop from empty dict")

	// ErrNoFrameBuilder is returned by Series, DataCol and DataRow when no
	// FrameBuilder has been registered.
	ErrNoFrameBuilder = errors.New("no frame builder registered")
)

// KeyError reports a lookup of a key that is not present.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("key not found: %q", e.Key)
}

// IndexError reports a positional access outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range with length %d", e.Index, e.Len)
}

// EncodeError reports a value the JSON encoder could not represent.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return "encode: " + e.Err.Error() }

func (e *EncodeError) Unwrap() error { return e.Err }
