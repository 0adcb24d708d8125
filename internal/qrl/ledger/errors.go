package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by a Store when a key is absent.
var ErrNotFound = errors.New("key not found")

// MissingMappingError reports an absent height or block key. The input is
// structurally incomplete and extraction cannot continue.
type MissingMappingError struct {
	Height uint64
	What   string
	Key    []byte
}

func (e *MissingMappingError) Error() string {
	return fmt.Sprintf("missing %s mapping at height %d (key %x)", e.What, e.Height, e.Key)
}

// AddressDecodeError reports an address state that could not be decoded.
type AddressDecodeError struct {
	Address string
	Err     error
}

func (e *AddressDecodeError) Error() string {
	return fmt.Sprintf("decode address state %s: %v", e.Address, e.Err)
}

func (e *AddressDecodeError) Unwrap() error {
	return e.Err
}
