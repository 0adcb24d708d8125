// Package extractor runs the ledger to relational tables pipeline.
package extractor

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/addressbook"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/chain"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/classify"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/writebuffer"
	"github.com/goodnatureofminers/blockinsight7000-qrl/pkg/safe"
	"go.uber.org/zap"
)

// Service walks every block once, in height order, on the calling goroutine.
type Service struct {
	logger  *zap.Logger
	source  LedgerSource
	metrics Metrics
	walker  *chain.Walker
	buffer  *writebuffer.Buffer
	book    *addressbook.Ledger
}

// NewService wires the pipeline. A non-positive flushThreshold selects
// writebuffer.DefaultFlushThreshold.
func NewService(
	source LedgerSource,
	repo Repository,
	metrics Metrics,
	flushThreshold int,
	logger *zap.Logger,
) (*Service, error) {
	if source == nil {
		return nil, errors.New("ledger source is required")
	}
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if metrics == nil {
		return nil, errors.New("extractor metrics is required")
	}

	buffer := writebuffer.New(repo, metrics, flushThreshold)
	return &Service{
		logger:  logger,
		source:  source,
		metrics: metrics,
		walker:  chain.NewWalker(source),
		buffer:  buffer,
		book:    addressbook.New(source, buffer, metrics, logger.Named("addressbook")),
	}, nil
}

// Run extracts blocks [0, height). Rows flushed before a fatal error stay
// committed; buffered rows are lost.
func (s *Service) Run(ctx context.Context) error {
	height, err := s.source.Height()
	if err != nil {
		return fmt.Errorf("read chain height: %w", err)
	}
	s.logger.Info("parsing block", zap.Uint64("height", 0), zap.Uint64("total", height))

	for block, err := range s.walker.Walk(ctx, height) {
		if err != nil {
			return err
		}

		flushed, err := s.buffer.MaybeFlush(ctx)
		if err != nil {
			return fmt.Errorf("flush before height %d: %w", block.Height, err)
		}
		if flushed {
			s.logger.Info("parsing block", zap.Uint64("height", block.Height), zap.Uint64("total", height))
		}

		started := time.Now()
		err = s.processBlock(block)
		s.metrics.ObserveBlock(err, block.Height, started)
		if err != nil {
			return fmt.Errorf("process height %d: %w", block.Height, err)
		}
	}

	if err := s.buffer.Flush(ctx); err != nil {
		return fmt.Errorf("final flush: %w", err)
	}
	s.logger.Info("extraction finished",
		zap.Uint64("blocks", height),
		zap.Int("addresses", s.book.Seen()),
	)
	return nil
}

func (s *Service) processBlock(block *model.Block) error {
	nbTransactions, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return fmt.Errorf("transaction count: %w", err)
	}
	s.buffer.AddBlockMetadata(model.BlockMetadataRecord{
		BlockNumber:    block.Height,
		HeaderHash:     hex.EncodeToString(block.HeaderHash),
		Timestamp:      block.Timestamp,
		NbTransactions: nbTransactions,
		RewardBlock:    block.RewardBlock,
	})

	for i := range block.Transactions {
		if err := s.processTransaction(block, &block.Transactions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) processTransaction(block *model.Block, tx *model.Transaction) error {
	switch v := classify.Classify(tx).(type) {
	case classify.Coinbase:
		return s.book.Touch(v.Address, block.Timestamp)
	case classify.Transfer:
		for _, addr := range v.Addresses {
			if err := s.book.Touch(addr, block.Timestamp); err != nil {
				return err
			}
		}
	case classify.Token:
		s.buffer.AddToken(v.Record)
	case classify.Message:
		s.buffer.AddMessage(model.MessageRecord{
			Message:         v.Text,
			BlockNumber:     block.Height,
			TransactionHash: v.TransactionHash,
		})
	case classify.Other:
		s.buffer.AddOtherTransaction(model.OtherTransactionRecord{
			BlockNumber:     block.Height,
			TransactionHash: v.TransactionHash,
			TxType:          v.Kind,
		})
	case classify.Unrecognized:
		s.buffer.AddOtherTransaction(model.OtherTransactionRecord{
			BlockNumber:     block.Height,
			TransactionHash: v.TransactionHash,
			TxType:          model.TxUnknown,
			Data:            v.Data,
		})
	}
	return nil
}
