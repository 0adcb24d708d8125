// Package classify maps decoded transactions onto extraction variants.
package classify

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"unicode/utf8"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/message"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"
)

type rule struct {
	kind    model.TxKind
	present func(tx *model.Transaction) bool
	extract func(tx *model.Transaction, kind model.TxKind) Variant
}

// rules are evaluated in order; the first structural match wins.
var rules = []rule{
	{model.TxCoinbase, func(tx *model.Transaction) bool { return tx.Coinbase != nil }, coinbase},
	{model.TxTransfer, func(tx *model.Transaction) bool { return tx.Transfer != nil }, transfer},
	{model.TxToken, func(tx *model.Transaction) bool { return tx.Token != nil }, token},
	{model.TxMessage, func(tx *model.Transaction) bool { return tx.Message != nil }, messageTx},
	{model.TxSlave, func(tx *model.Transaction) bool { return tx.Slave != nil }, other},
	{model.TxTransferToken, func(tx *model.Transaction) bool { return tx.TransferToken != nil }, other},
	{model.TxMultiSigCreate, func(tx *model.Transaction) bool { return tx.MultiSigCreate != nil }, other},
	{model.TxLatticePK, func(tx *model.Transaction) bool { return tx.LatticePK != nil }, other},
	{model.TxMultiSigSpend, func(tx *model.Transaction) bool { return tx.MultiSigSpend != nil }, other},
	{model.TxMultiSigVote, func(tx *model.Transaction) bool { return tx.MultiSigVote != nil }, other},
}

// Classify returns the variant of tx. It never fails: shapes without a rule
// become Unrecognized.
func Classify(tx *model.Transaction) Variant {
	for _, r := range rules {
		if r.present(tx) {
			return r.extract(tx, r.kind)
		}
	}
	return Unrecognized{
		TransactionHash: hex.EncodeToString(tx.Hash),
		Data:            Dump(tx),
	}
}

func coinbase(tx *model.Transaction, _ model.TxKind) Variant {
	return Coinbase{Address: tx.Coinbase.AddrTo}
}

func transfer(tx *model.Transaction, _ model.TxKind) Variant {
	return Transfer{Addresses: tx.Transfer.AddrsTo}
}

func token(tx *model.Transaction, _ model.TxKind) Variant {
	return Token{Record: model.TokenRecord{
		Name:            text(tx.Token.Name),
		Symbol:          text(tx.Token.Symbol),
		Owner:           model.Address(tx.Token.Owner).String(),
		TransactionHash: hex.EncodeToString(tx.Hash),
	}}
}

func messageTx(tx *model.Transaction, _ model.TxKind) Variant {
	return Message{
		Text:            message.DecodeBytes(tx.Message.MessageHash),
		TransactionHash: hex.EncodeToString(tx.Hash),
	}
}

func other(tx *model.Transaction, kind model.TxKind) Variant {
	return Other{Kind: kind, TransactionHash: hex.EncodeToString(tx.Hash)}
}

// text decodes UTF-8 token text, keeping hex for invalid bytes.
func text(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return hex.EncodeToString(b)
}

type dump struct {
	MasterAddr      []byte            `json:"masterAddr,omitempty"`
	Fee             string            `json:"fee,omitempty"`
	PublicKey       []byte            `json:"publicKey,omitempty"`
	Signature       []byte            `json:"signature,omitempty"`
	Nonce           string            `json:"nonce,omitempty"`
	TransactionHash []byte            `json:"transactionHash,omitempty"`
	UnknownFields   map[string][]byte `json:"unknownFields,omitempty"`
}

// Dump renders a transaction as JSON for forensic retention. Bytes are base64
// and integers are strings, matching the protobuf JSON mapping.
func Dump(tx *model.Transaction) string {
	d := dump{
		MasterAddr:      tx.MasterAddr,
		PublicKey:       tx.PublicKey,
		Signature:       tx.Signature,
		TransactionHash: tx.Hash,
	}
	if tx.Fee != 0 {
		d.Fee = strconv.FormatUint(tx.Fee, 10)
	}
	if tx.Nonce != 0 {
		d.Nonce = strconv.FormatUint(tx.Nonce, 10)
	}
	if len(tx.Unrecognized) > 0 {
		d.UnknownFields = make(map[string][]byte, len(tx.Unrecognized))
		for _, f := range tx.Unrecognized {
			d.UnknownFields[strconv.Itoa(int(f.Number))] = f.Raw
		}
	}

	out, err := json.Marshal(d)
	if err != nil {
		return ""
	}
	return string(out)
}
