package model

// TxKind names a transaction variant as stored in otherTransactions.txType.
type TxKind string

const (
	TxCoinbase       TxKind = "coinbase"
	TxTransfer       TxKind = "transfer"
	TxToken          TxKind = "token"
	TxMessage        TxKind = "message"
	TxSlave          TxKind = "slave"
	TxTransferToken  TxKind = "transferToken"
	TxMultiSigCreate TxKind = "multiSigCreate"
	TxLatticePK      TxKind = "latticePK"
	TxMultiSigSpend  TxKind = "multiSigSpend"
	TxMultiSigVote   TxKind = "multiSigVote"
	// TxUnknown is the empty type recorded for unrecognized shapes.
	TxUnknown TxKind = ""
)

// Transaction is the decoded transaction tree. Exactly one payload pointer is
// expected to be set; malformed input may carry several.
type Transaction struct {
	MasterAddr []byte
	Fee        uint64
	PublicKey  []byte
	Signature  []byte
	Nonce      uint64
	Hash       []byte

	Coinbase       *Coinbase
	Transfer       *Transfer
	Token          *Token
	Message        *Message
	Slave          *RawPayload
	TransferToken  *RawPayload
	MultiSigCreate *RawPayload
	LatticePK      *RawPayload
	MultiSigSpend  *RawPayload
	MultiSigVote   *RawPayload

	// Unrecognized holds payload fields the decoder has no schema for.
	Unrecognized []UnknownField
}

// Coinbase pays the block reward to a single address.
type Coinbase struct {
	AddrTo Address
	Amount uint64
}

// Transfer moves funds to one or more addresses.
type Transfer struct {
	AddrsTo     []Address
	Amounts     []uint64
	MessageData []byte
}

// Token creates a new token.
type Token struct {
	Symbol   []byte
	Name     []byte
	Owner    []byte
	Decimals uint64
}

// Message carries a free-form payload.
type Message struct {
	MessageHash []byte
	AddrTo      Address
}

// RawPayload is a variant without extracted fields.
type RawPayload struct {
	Raw []byte
}

// UnknownField is a transaction field outside the known schema.
type UnknownField struct {
	Number int32
	Raw    []byte
}
