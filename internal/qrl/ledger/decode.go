package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"
	"github.com/goodnatureofminers/blockinsight7000-qrl/pkg/safe"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the QRL protobuf schema.
const (
	blockHeaderField       protowire.Number = 1
	blockTransactionsField protowire.Number = 2

	headerHashField        protowire.Number = 1
	headerTimestampField   protowire.Number = 3
	headerRewardBlockField protowire.Number = 5

	txMasterAddrField     protowire.Number = 1
	txFeeField            protowire.Number = 2
	txPublicKeyField      protowire.Number = 3
	txSignatureField      protowire.Number = 4
	txNonceField          protowire.Number = 5
	txHashField           protowire.Number = 6
	txTransferField       protowire.Number = 7
	txCoinbaseField       protowire.Number = 8
	txLatticePKField      protowire.Number = 9
	txMessageField        protowire.Number = 10
	txTokenField          protowire.Number = 11
	txTransferTokenField  protowire.Number = 12
	txSlaveField          protowire.Number = 13
	txMultiSigCreateField protowire.Number = 14
	txMultiSigSpendField  protowire.Number = 15
	txMultiSigVoteField   protowire.Number = 16

	addressStateBalanceField protowire.Number = 2
)

type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []byte
	raw    []byte
}

func forEachField(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		start := b
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
		f.raw = start[:len(start)-len(b)]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

func (f field) message() ([]byte, error) {
	if f.typ != protowire.BytesType {
		return nil, fmt.Errorf("field %d: wire type %d is not length-delimited", f.num, f.typ)
	}
	return f.bytes, nil
}

func (f field) number() (uint64, error) {
	if f.typ != protowire.VarintType {
		return 0, fmt.Errorf("field %d: wire type %d is not varint", f.num, f.typ)
	}
	return f.varint, nil
}

// appendUint64s handles both packed and unpacked repeated uint64 encodings.
func (f field) appendUint64s(dst []uint64) ([]uint64, error) {
	if f.typ == protowire.VarintType {
		return append(dst, f.varint), nil
	}
	b, err := f.message()
	if err != nil {
		return nil, err
	}
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, fmt.Errorf("field %d: %w", f.num, protowire.ParseError(n))
		}
		dst = append(dst, v)
		b = b[n:]
	}
	return dst, nil
}

// DecodeBlock decodes a serialized Block message.
func DecodeBlock(b []byte) (*model.Block, error) {
	block := &model.Block{}
	err := forEachField(b, func(f field) error {
		switch f.num {
		case blockHeaderField:
			msg, err := f.message()
			if err != nil {
				return err
			}
			return decodeHeader(msg, block)
		case blockTransactionsField:
			msg, err := f.message()
			if err != nil {
				return err
			}
			tx, err := DecodeTransaction(msg)
			if err != nil {
				return fmt.Errorf("transaction %d: %w", len(block.Transactions), err)
			}
			block.Transactions = append(block.Transactions, *tx)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode block: %w", err)
	}
	return block, nil
}

func decodeHeader(b []byte, block *model.Block) error {
	return forEachField(b, func(f field) error {
		var err error
		switch f.num {
		case headerHashField:
			block.HeaderHash, err = f.message()
		case headerTimestampField:
			var ts uint64
			if ts, err = f.number(); err != nil {
				break
			}
			var seconds int64
			if seconds, err = safe.Int64(ts); err == nil {
				block.Timestamp = time.Unix(seconds, 0).UTC()
			}
		case headerRewardBlockField:
			block.RewardBlock, err = f.number()
		}
		if err != nil {
			return fmt.Errorf("header: %w", err)
		}
		return nil
	})
}

// DecodeTransaction decodes a serialized Transaction message.
func DecodeTransaction(b []byte) (*model.Transaction, error) {
	tx := &model.Transaction{}
	err := forEachField(b, func(f field) error {
		var err error
		switch f.num {
		case txMasterAddrField:
			tx.MasterAddr, err = f.message()
		case txFeeField:
			tx.Fee, err = f.number()
		case txPublicKeyField:
			tx.PublicKey, err = f.message()
		case txSignatureField:
			tx.Signature, err = f.message()
		case txNonceField:
			tx.Nonce, err = f.number()
		case txHashField:
			tx.Hash, err = f.message()
		case txTransferField:
			tx.Transfer, err = decodeTransfer(f)
		case txCoinbaseField:
			tx.Coinbase, err = decodeCoinbase(f)
		case txLatticePKField:
			tx.LatticePK, err = rawPayload(f)
		case txMessageField:
			tx.Message, err = decodeMessage(f)
		case txTokenField:
			tx.Token, err = decodeToken(f)
		case txTransferTokenField:
			tx.TransferToken, err = rawPayload(f)
		case txSlaveField:
			tx.Slave, err = rawPayload(f)
		case txMultiSigCreateField:
			tx.MultiSigCreate, err = rawPayload(f)
		case txMultiSigSpendField:
			tx.MultiSigSpend, err = rawPayload(f)
		case txMultiSigVoteField:
			tx.MultiSigVote, err = rawPayload(f)
		default:
			tx.Unrecognized = append(tx.Unrecognized, model.UnknownField{
				Number: int32(f.num),
				Raw:    f.raw,
			})
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}
	return tx, nil
}

func rawPayload(f field) (*model.RawPayload, error) {
	msg, err := f.message()
	if err != nil {
		return nil, err
	}
	return &model.RawPayload{Raw: msg}, nil
}

func decodeCoinbase(f field) (*model.Coinbase, error) {
	msg, err := f.message()
	if err != nil {
		return nil, err
	}
	cb := &model.Coinbase{}
	err = forEachField(msg, func(f field) error {
		var err error
		switch f.num {
		case 1:
			cb.AddrTo, err = f.message()
		case 2:
			cb.Amount, err = f.number()
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("coinbase: %w", err)
	}
	return cb, nil
}

func decodeTransfer(f field) (*model.Transfer, error) {
	msg, err := f.message()
	if err != nil {
		return nil, err
	}
	tr := &model.Transfer{}
	err = forEachField(msg, func(f field) error {
		switch f.num {
		case 1:
			addr, err := f.message()
			if err != nil {
				return err
			}
			tr.AddrsTo = append(tr.AddrsTo, addr)
		case 2:
			amounts, err := f.appendUint64s(tr.Amounts)
			if err != nil {
				return err
			}
			tr.Amounts = amounts
		case 3:
			data, err := f.message()
			if err != nil {
				return err
			}
			tr.MessageData = data
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("transfer: %w", err)
	}
	return tr, nil
}

func decodeMessage(f field) (*model.Message, error) {
	msg, err := f.message()
	if err != nil {
		return nil, err
	}
	m := &model.Message{}
	err = forEachField(msg, func(f field) error {
		var err error
		switch f.num {
		case 1:
			m.MessageHash, err = f.message()
		case 2:
			m.AddrTo, err = f.message()
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("message: %w", err)
	}
	return m, nil
}

func decodeToken(f field) (*model.Token, error) {
	msg, err := f.message()
	if err != nil {
		return nil, err
	}
	t := &model.Token{}
	err = forEachField(msg, func(f field) error {
		var err error
		switch f.num {
		case 1:
			t.Symbol, err = f.message()
		case 2:
			t.Name, err = f.message()
		case 3:
			t.Owner, err = f.message()
		case 4:
			t.Decimals, err = f.number()
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("token: %w", err)
	}
	return t, nil
}

// DecodeBalance extracts the balance of a serialized AddressState message.
// An absent balance field is zero.
func DecodeBalance(b []byte) (uint64, error) {
	var balance uint64
	err := forEachField(b, func(f field) error {
		if f.num != addressStateBalanceField {
			return nil
		}
		var err error
		balance, err = f.number()
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

type blockNumberMapping struct {
	HeaderHash []byte `json:"headerhash"`
}

// DecodeHeaderHash extracts the header hash of a JSON BlockNumberMapping.
func DecodeHeaderHash(b []byte) ([]byte, error) {
	var mapping blockNumberMapping
	if err := json.Unmarshal(b, &mapping); err != nil {
		return nil, fmt.Errorf("decode block number mapping: %w", err)
	}
	if len(mapping.HeaderHash) == 0 {
		return nil, errors.New("block number mapping has no header hash")
	}
	return mapping.HeaderHash, nil
}

// DecodeHeight decodes the big-endian unsigned chain height.
func DecodeHeight(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, fmt.Errorf("block height is %d bytes, want at most 8", len(b))
	}
	var height uint64
	for _, c := range b {
		height = height<<8 | uint64(c)
	}
	return height, nil
}
