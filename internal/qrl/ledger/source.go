package ledger

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"
)

var heightKey = []byte("blockheight")

// Source resolves chain data through the fixed ledger key layout.
type Source struct {
	store Store
}

// NewSource wraps a Store.
func NewSource(store Store) *Source {
	return &Source{store: store}
}

// Height returns the number of blocks in the chain.
func (s *Source) Height() (uint64, error) {
	value, err := s.store.Get(heightKey)
	if errors.Is(err, ErrNotFound) {
		return 0, &MissingMappingError{What: "block height", Key: heightKey}
	}
	if err != nil {
		return 0, fmt.Errorf("get block height: %w", err)
	}
	return DecodeHeight(value)
}

// HeaderHash resolves the header hash of the block at height.
func (s *Source) HeaderHash(height uint64) ([]byte, error) {
	key := []byte(strconv.FormatUint(height, 10))
	value, err := s.store.Get(key)
	if errors.Is(err, ErrNotFound) {
		return nil, &MissingMappingError{Height: height, What: "height", Key: key}
	}
	if err != nil {
		return nil, fmt.Errorf("get mapping of height %d: %w", height, err)
	}

	hash, err := DecodeHeaderHash(value)
	if err != nil {
		return nil, fmt.Errorf("height %d: %w", height, err)
	}
	return hash, nil
}

// Block loads and decodes the block stored under headerHash.
func (s *Source) Block(height uint64, headerHash []byte) (*model.Block, error) {
	value, err := s.store.Get(headerHash)
	if errors.Is(err, ErrNotFound) {
		return nil, &MissingMappingError{Height: height, What: "block", Key: headerHash}
	}
	if err != nil {
		return nil, fmt.Errorf("get block %x: %w", headerHash, err)
	}

	block, err := DecodeBlock(value)
	if err != nil {
		return nil, fmt.Errorf("height %d: %w", height, err)
	}
	block.Height = height
	block.HeaderHash = headerHash
	return block, nil
}

// Balance returns the nano-unit balance of an address. Absent state is a
// zero balance; undecodable state is an *AddressDecodeError.
func (s *Source) Balance(addr model.Address) (uint64, error) {
	value, err := s.store.Get(addr)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get address state %s: %w", addr, err)
	}

	balance, err := DecodeBalance(value)
	if err != nil {
		return 0, &AddressDecodeError{Address: addr.String(), Err: err}
	}
	return balance, nil
}
