package model

import "encoding/hex"

// AddressPrefix marks the human-readable form of an address.
const AddressPrefix = "Q"

// Address is the raw byte key of an account in the ledger store.
type Address []byte

// String renders the address as "Q" followed by its hex-encoded bytes.
func (a Address) String() string {
	return AddressPrefix + hex.EncodeToString(a)
}
