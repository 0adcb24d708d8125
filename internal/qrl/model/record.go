package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddressRecord is the first-seen row of an address.
type AddressRecord struct {
	Address   string
	Balance   decimal.Decimal
	FirstSeen time.Time
	LastSeen  time.Time
	Tag       string
}

// AddressSeen moves the lastSeen of an already inserted address.
type AddressSeen struct {
	Address  string
	LastSeen time.Time
}

// BlockMetadataRecord summarizes a block.
type BlockMetadataRecord struct {
	BlockNumber    uint64
	HeaderHash     string
	Timestamp      time.Time
	NbTransactions uint32
	RewardBlock    uint64
}

// OtherTransactionRecord stores a transaction without a dedicated table.
type OtherTransactionRecord struct {
	BlockNumber     uint64
	TransactionHash string
	TxType          TxKind
	Data            string
}

// MessageRecord stores a decoded message transaction.
type MessageRecord struct {
	Message         string
	BlockNumber     uint64
	TransactionHash string
}

// TokenRecord stores a token creation.
type TokenRecord struct {
	Name            string
	Symbol          string
	Owner           string
	TransactionHash string
}
