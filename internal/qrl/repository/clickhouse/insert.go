package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"
	"github.com/shopspring/decimal"
)

const (
	insertAddressesQuery = `
INSERT INTO qrl_addresses (
	address,
	balance,
	first_seen,
	last_seen,
	tag
) VALUES`

	insertBlockMetadataQuery = `
INSERT INTO qrl_block_metadata (
	block_num,
	hash_header,
	timestamp_seconds,
	nb_transactions,
	reward_block
) VALUES`

	insertOtherTransactionsQuery = `
INSERT INTO qrl_other_transactions (
	block_num,
	transaction_hash,
	tx_type,
	data
) VALUES`

	insertMessagesQuery = `
INSERT INTO qrl_messages (
	message_hash,
	block_num,
	transaction_hash
) VALUES`

	insertTokensQuery = `
INSERT INTO qrl_tokens (
	token_name,
	token_symbol,
	token_owner,
	transaction_hash
) VALUES`
)

// InsertAddresses stores first-seen address rows.
func (r *Repository) InsertAddresses(ctx context.Context, rows []model.AddressRecord) error {
	return insertBatch(ctx, r, "insert_addresses", insertAddressesQuery, rows, addressValues)
}

// UpdateAddressesLastSeen appends rows that the aggregating engine merges
// into the existing address: max(last_seen) moves, the other columns keep
// their aggregate.
func (r *Repository) UpdateAddressesLastSeen(ctx context.Context, rows []model.AddressSeen) error {
	return insertBatch(ctx, r, "update_addresses_last_seen", insertAddressesQuery, rows, addressSeenValues)
}

// InsertBlockMetadata stores one row per block.
func (r *Repository) InsertBlockMetadata(ctx context.Context, rows []model.BlockMetadataRecord) error {
	return insertBatch(ctx, r, "insert_block_metadata", insertBlockMetadataQuery, rows, blockMetadataValues)
}

// InsertOtherTransactions stores transactions without a dedicated table.
func (r *Repository) InsertOtherTransactions(ctx context.Context, rows []model.OtherTransactionRecord) error {
	return insertBatch(ctx, r, "insert_other_transactions", insertOtherTransactionsQuery, rows, otherTransactionValues)
}

// InsertMessages stores decoded messages.
func (r *Repository) InsertMessages(ctx context.Context, rows []model.MessageRecord) error {
	return insertBatch(ctx, r, "insert_messages", insertMessagesQuery, rows, messageValues)
}

// InsertTokens stores token creations.
func (r *Repository) InsertTokens(ctx context.Context, rows []model.TokenRecord) error {
	return insertBatch(ctx, r, "insert_tokens", insertTokensQuery, rows, tokenValues)
}

func insertBatch[T any](ctx context.Context, r *Repository, operation, query string, rows []T, values func(T) []any) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe(operation, sinkName, err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare %s batch: %w", operation, err)
	}

	for _, row := range rows {
		if err = batch.Append(values(row)...); err != nil {
			return fmt.Errorf("%s: append: %w", operation, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	return nil
}

func addressValues(a model.AddressRecord) []any {
	return []any{a.Address, a.Balance, a.FirstSeen.UTC(), a.LastSeen.UTC(), a.Tag}
}

func addressSeenValues(a model.AddressSeen) []any {
	return []any{a.Address, decimal.Zero, a.LastSeen.UTC(), a.LastSeen.UTC(), ""}
}

func blockMetadataValues(b model.BlockMetadataRecord) []any {
	return []any{b.BlockNumber, b.HeaderHash, b.Timestamp.UTC(), b.NbTransactions, b.RewardBlock}
}

func otherTransactionValues(o model.OtherTransactionRecord) []any {
	return []any{o.BlockNumber, o.TransactionHash, string(o.TxType), o.Data}
}

func messageValues(m model.MessageRecord) []any {
	return []any{m.Message, m.BlockNumber, m.TransactionHash}
}

func tokenValues(t model.TokenRecord) []any {
	return []any{t.Name, t.Symbol, t.Owner, t.TransactionHash}
}
