// Package chain walks the canonical chain of a ledger store by height.
package chain

import (
	"context"
	"iter"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"
)

// Walker resolves height -> header hash -> block.
type Walker struct {
	source Source
}

// NewWalker builds a Walker over source.
func NewWalker(source Source) *Walker {
	return &Walker{source: source}
}

// Walk yields the blocks at heights [0, height) in increasing order. The
// first error is yielded with a nil block and ends the sequence.
func (w *Walker) Walk(ctx context.Context, height uint64) iter.Seq2[*model.Block, error] {
	return func(yield func(*model.Block, error) bool) {
		for h := uint64(0); h < height; h++ {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}

			block, err := w.Block(h)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(block, nil) {
				return
			}
		}
	}
}

// Block resolves a single height.
func (w *Walker) Block(height uint64) (*model.Block, error) {
	hash, err := w.source.HeaderHash(height)
	if err != nil {
		return nil, err
	}
	return w.source.Block(height, hash)
}
