// Package model defines domain models for QRL ledger extraction.
package model

import "time"

// Block is a block read from the ledger store, identified by its height.
type Block struct {
	Height       uint64
	HeaderHash   []byte
	Timestamp    time.Time
	RewardBlock  uint64
	Transactions []Transaction
}
