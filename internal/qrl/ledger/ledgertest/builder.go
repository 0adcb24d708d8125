// Package ledgertest builds in-memory ledger stores for tests.
package ledgertest

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/ledger"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"
	"google.golang.org/protobuf/encoding/protowire"
)

// Builder writes blocks and address states using the ledger key layout.
type Builder struct {
	t      testing.TB
	Store  *ledger.LevelDBStore
	height uint64
}

// New opens an in-memory store closed at test cleanup.
func New(t testing.TB) *Builder {
	t.Helper()

	store, err := ledger.OpenMemory()
	if err != nil {
		t.Fatalf("open memory store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return &Builder{t: t, Store: store}
}

// AddBlock stores block at the next height and bumps the chain height.
func (b *Builder) AddBlock(hash []byte, block model.Block) {
	b.t.Helper()

	mapping, err := json.Marshal(map[string][]byte{"headerhash": hash})
	if err != nil {
		b.t.Fatalf("marshal mapping: %v", err)
	}
	b.Put([]byte(strconv.FormatUint(b.height, 10)), mapping)
	b.Put(hash, EncodeBlock(block))
	b.height++
	b.SetHeight(b.height)
}

// SetHeight overrides the stored chain height.
func (b *Builder) SetHeight(height uint64) {
	b.t.Helper()

	var raw []byte
	for v := height; v > 0; v >>= 8 {
		raw = append([]byte{byte(v)}, raw...)
	}
	if len(raw) == 0 {
		raw = []byte{0}
	}
	b.Put([]byte("blockheight"), raw)
}

// SetBalance stores an address state holding balance.
func (b *Builder) SetBalance(addr model.Address, balance uint64) {
	b.t.Helper()

	var state []byte
	state = protowire.AppendTag(state, 1, protowire.BytesType)
	state = protowire.AppendBytes(state, addr)
	state = protowire.AppendTag(state, 2, protowire.VarintType)
	state = protowire.AppendVarint(state, balance)
	b.Put(addr, state)
}

// Put stores a raw key.
func (b *Builder) Put(key, value []byte) {
	b.t.Helper()

	if err := b.Store.Put(key, value); err != nil {
		b.t.Fatalf("put %x: %v", key, err)
	}
}

// EncodeBlock serializes a block with the QRL protobuf field layout.
func EncodeBlock(block model.Block) []byte {
	var header []byte
	header = appendBytes(header, 1, block.HeaderHash)
	header = appendVarint(header, 2, block.Height)
	if !block.Timestamp.IsZero() {
		header = appendVarint(header, 3, uint64(block.Timestamp.Unix()))
	}
	header = appendVarint(header, 5, block.RewardBlock)

	var out []byte
	out = appendBytes(out, 1, header)
	for _, tx := range block.Transactions {
		out = appendBytes(out, 2, EncodeTransaction(tx))
	}
	return out
}

// EncodeTransaction serializes a transaction with the QRL protobuf field layout.
func EncodeTransaction(tx model.Transaction) []byte {
	var out []byte
	out = appendBytes(out, 1, tx.MasterAddr)
	out = appendVarint(out, 2, tx.Fee)
	out = appendBytes(out, 3, tx.PublicKey)
	out = appendBytes(out, 4, tx.Signature)
	out = appendVarint(out, 5, tx.Nonce)
	out = appendBytes(out, 6, tx.Hash)

	if tx.Transfer != nil {
		var msg []byte
		for _, addr := range tx.Transfer.AddrsTo {
			msg = appendBytes(msg, 1, addr)
		}
		if len(tx.Transfer.Amounts) > 0 {
			var packed []byte
			for _, amount := range tx.Transfer.Amounts {
				packed = protowire.AppendVarint(packed, amount)
			}
			msg = appendBytes(msg, 2, packed)
		}
		msg = appendBytes(msg, 3, tx.Transfer.MessageData)
		out = appendMessage(out, 7, msg)
	}
	if tx.Coinbase != nil {
		var msg []byte
		msg = appendBytes(msg, 1, tx.Coinbase.AddrTo)
		msg = appendVarint(msg, 2, tx.Coinbase.Amount)
		out = appendMessage(out, 8, msg)
	}
	out = appendRaw(out, 9, tx.LatticePK)
	if tx.Message != nil {
		var msg []byte
		msg = appendBytes(msg, 1, tx.Message.MessageHash)
		msg = appendBytes(msg, 2, tx.Message.AddrTo)
		out = appendMessage(out, 10, msg)
	}
	if tx.Token != nil {
		var msg []byte
		msg = appendBytes(msg, 1, tx.Token.Symbol)
		msg = appendBytes(msg, 2, tx.Token.Name)
		msg = appendBytes(msg, 3, tx.Token.Owner)
		msg = appendVarint(msg, 4, tx.Token.Decimals)
		out = appendMessage(out, 11, msg)
	}
	out = appendRaw(out, 12, tx.TransferToken)
	out = appendRaw(out, 13, tx.Slave)
	out = appendRaw(out, 14, tx.MultiSigCreate)
	out = appendRaw(out, 15, tx.MultiSigSpend)
	out = appendRaw(out, 16, tx.MultiSigVote)
	for _, f := range tx.Unrecognized {
		out = append(out, f.Raw...)
	}
	return out
}

// UnknownMessageField encodes an unrecognized length-delimited field.
func UnknownMessageField(num int32, payload []byte) model.UnknownField {
	return model.UnknownField{Number: num, Raw: appendMessage(nil, protowire.Number(num), payload)}
}

// Timestamp is a fixed block time for fixtures.
var Timestamp = time.Unix(1530004179, 0).UTC()

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	return appendMessage(b, num, v)
}

func appendMessage(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendRaw(b []byte, num protowire.Number, p *model.RawPayload) []byte {
	if p == nil {
		return b
	}
	return appendMessage(b, num, p.Raw)
}
