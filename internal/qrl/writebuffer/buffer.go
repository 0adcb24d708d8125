// Package writebuffer accumulates output rows in memory and commits them to a
// repository in bulk.
package writebuffer

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"
)

// DefaultFlushThreshold is the buffered row count a flush is triggered above.
const DefaultFlushThreshold = 100_000

// Buffer holds the six pending batches. It is not safe for concurrent use.
type Buffer struct {
	repo      Repository
	metrics   Metrics
	threshold int

	total             int
	addresses         []model.AddressRecord
	updateAddresses   []model.AddressSeen
	blockMetadata     []model.BlockMetadataRecord
	otherTransactions []model.OtherTransactionRecord
	messages          []model.MessageRecord
	tokens            []model.TokenRecord
}

// New builds a Buffer. A non-positive threshold selects DefaultFlushThreshold.
func New(repo Repository, metrics Metrics, threshold int) *Buffer {
	if threshold <= 0 {
		threshold = DefaultFlushThreshold
	}
	return &Buffer{
		repo:      repo,
		metrics:   metrics,
		threshold: threshold,
	}
}

func (b *Buffer) AddAddress(r model.AddressRecord) {
	b.addresses = append(b.addresses, r)
	b.total++
}

func (b *Buffer) AddAddressSeen(r model.AddressSeen) {
	b.updateAddresses = append(b.updateAddresses, r)
	b.total++
}

func (b *Buffer) AddBlockMetadata(r model.BlockMetadataRecord) {
	b.blockMetadata = append(b.blockMetadata, r)
	b.total++
}

func (b *Buffer) AddOtherTransaction(r model.OtherTransactionRecord) {
	b.otherTransactions = append(b.otherTransactions, r)
	b.total++
}

func (b *Buffer) AddMessage(r model.MessageRecord) {
	b.messages = append(b.messages, r)
	b.total++
}

func (b *Buffer) AddToken(r model.TokenRecord) {
	b.tokens = append(b.tokens, r)
	b.total++
}

// Len returns the number of buffered rows across all batches.
func (b *Buffer) Len() int {
	return b.total
}

// MaybeFlush flushes when the buffered row count exceeds the threshold and
// reports whether it did.
func (b *Buffer) MaybeFlush(ctx context.Context) (bool, error) {
	if b.total <= b.threshold {
		return false, nil
	}
	return true, b.Flush(ctx)
}

// Flush writes every non-empty batch and clears the buffer. Addresses are
// written before their last-seen updates. Flushing an empty buffer is a
// no-op.
func (b *Buffer) Flush(ctx context.Context) (err error) {
	if b.total == 0 {
		return nil
	}

	rows := b.total
	started := time.Now()
	defer func() {
		if b.metrics != nil {
			b.metrics.ObserveFlush(err, rows, started)
		}
	}()

	if err = write(ctx, "addresses", b.addresses, b.repo.InsertAddresses); err != nil {
		return err
	}
	if err = write(ctx, "updateAddresses", b.updateAddresses, b.repo.UpdateAddressesLastSeen); err != nil {
		return err
	}
	if err = write(ctx, "blockMetadata", b.blockMetadata, b.repo.InsertBlockMetadata); err != nil {
		return err
	}
	if err = write(ctx, "otherTransactions", b.otherTransactions, b.repo.InsertOtherTransactions); err != nil {
		return err
	}
	if err = write(ctx, "messages", b.messages, b.repo.InsertMessages); err != nil {
		return err
	}
	if err = write(ctx, "tokens", b.tokens, b.repo.InsertTokens); err != nil {
		return err
	}

	b.reset()
	return nil
}

func (b *Buffer) reset() {
	b.total = 0
	b.addresses = b.addresses[:0]
	b.updateAddresses = b.updateAddresses[:0]
	b.blockMetadata = b.blockMetadata[:0]
	b.otherTransactions = b.otherTransactions[:0]
	b.messages = b.messages[:0]
	b.tokens = b.tokens[:0]
}

func write[T any](ctx context.Context, table string, rows []T, insert func(context.Context, []T) error) error {
	if len(rows) == 0 {
		return nil
	}
	if err := insert(ctx, rows); err != nil {
		return fmt.Errorf("flush %s: %w", table, err)
	}
	return nil
}
