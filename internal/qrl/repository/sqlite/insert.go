package sqlite

import (
	"context"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"
	"github.com/goodnatureofminers/blockinsight7000-qrl/pkg/safe"
)

const (
	insertAddressesQuery         = `INSERT INTO addresses (address, balance, firstSeen, lastSeen, tag) VALUES (?, ?, ?, ?, ?)`
	updateAddressesLastSeenQuery = `UPDATE addresses SET lastSeen = ? WHERE address = ?`
	insertBlockMetadataQuery     = `INSERT INTO blockMetadata (blockNum, hashHeader, timestampSeconds, nbTransactions, rewardBlock) VALUES (?, ?, ?, ?, ?)`
	insertOtherTransactionsQuery = `INSERT INTO otherTransactions (blockNum, transactionHash, txType, data) VALUES (?, ?, ?, ?)`
	insertMessagesQuery          = `INSERT INTO messages (messageHash, blockNum, transactionHash) VALUES (?, ?, ?)`
	insertTokensQuery            = `INSERT INTO tokens (tokenName, tokenSymbol, tokenOwner, transactionHash) VALUES (?, ?, ?, ?)`
)

// InsertAddresses stores first-seen address rows.
func (r *Repository) InsertAddresses(ctx context.Context, rows []model.AddressRecord) error {
	return execBatch(ctx, r, "insert_addresses", insertAddressesQuery, rows, addressArgs)
}

// UpdateAddressesLastSeen moves lastSeen of already stored addresses.
func (r *Repository) UpdateAddressesLastSeen(ctx context.Context, rows []model.AddressSeen) error {
	return execBatch(ctx, r, "update_addresses_last_seen", updateAddressesLastSeenQuery, rows, addressSeenArgs)
}

// InsertBlockMetadata stores one row per block.
func (r *Repository) InsertBlockMetadata(ctx context.Context, rows []model.BlockMetadataRecord) error {
	return execBatch(ctx, r, "insert_block_metadata", insertBlockMetadataQuery, rows, blockMetadataArgs)
}

// InsertOtherTransactions stores transactions without a dedicated table.
func (r *Repository) InsertOtherTransactions(ctx context.Context, rows []model.OtherTransactionRecord) error {
	return execBatch(ctx, r, "insert_other_transactions", insertOtherTransactionsQuery, rows, otherTransactionArgs)
}

// InsertMessages stores decoded messages.
func (r *Repository) InsertMessages(ctx context.Context, rows []model.MessageRecord) error {
	return execBatch(ctx, r, "insert_messages", insertMessagesQuery, rows, messageArgs)
}

// InsertTokens stores token creations.
func (r *Repository) InsertTokens(ctx context.Context, rows []model.TokenRecord) error {
	return execBatch(ctx, r, "insert_tokens", insertTokensQuery, rows, tokenArgs)
}

func addressArgs(a model.AddressRecord) ([]any, error) {
	return []any{a.Address, a.Balance.InexactFloat64(), seconds(a.FirstSeen), seconds(a.LastSeen), a.Tag}, nil
}

func addressSeenArgs(a model.AddressSeen) ([]any, error) {
	return []any{seconds(a.LastSeen), a.Address}, nil
}

func blockMetadataArgs(b model.BlockMetadataRecord) ([]any, error) {
	blockNum, err := safe.Int64(b.BlockNumber)
	if err != nil {
		return nil, err
	}
	return []any{
		blockNum,
		b.HeaderHash,
		seconds(b.Timestamp),
		int64(b.NbTransactions),
		strconv.FormatUint(b.RewardBlock, 10),
	}, nil
}

func otherTransactionArgs(o model.OtherTransactionRecord) ([]any, error) {
	blockNum, err := safe.Int64(o.BlockNumber)
	if err != nil {
		return nil, err
	}
	return []any{blockNum, o.TransactionHash, string(o.TxType), o.Data}, nil
}

func messageArgs(m model.MessageRecord) ([]any, error) {
	blockNum, err := safe.Int64(m.BlockNumber)
	if err != nil {
		return nil, err
	}
	return []any{m.Message, blockNum, m.TransactionHash}, nil
}

func tokenArgs(t model.TokenRecord) ([]any, error) {
	return []any{t.Name, t.Symbol, t.Owner, t.TransactionHash}, nil
}

// seconds renders t as decimal Unix seconds, the text form of the time columns.
func seconds(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
