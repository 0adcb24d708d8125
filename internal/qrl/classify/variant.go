package classify

import "github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"

// Variant is the closed set of extraction outcomes for a transaction.
type Variant interface {
	variant()
}

// Coinbase touches the reward destination.
type Coinbase struct {
	Address model.Address
}

// Transfer touches every destination.
type Transfer struct {
	Addresses []model.Address
}

// Token produces a tokens row.
type Token struct {
	Record model.TokenRecord
}

// Message produces a messages row.
type Message struct {
	Text            string
	TransactionHash string
}

// Other is a known variant without payload extraction.
type Other struct {
	Kind            model.TxKind
	TransactionHash string
}

// Unrecognized keeps a textual dump of a transaction with no known shape.
type Unrecognized struct {
	TransactionHash string
	Data            string
}

func (Coinbase) variant()     {}
func (Transfer) variant()     {}
func (Token) variant()        {}
func (Message) variant()      {}
func (Other) variant()        {}
func (Unrecognized) variant() {}
