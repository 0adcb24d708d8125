package chain

import "github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Source interface {
		HeaderHash(height uint64) ([]byte, error)
		Block(height uint64, headerHash []byte) (*model.Block, error)
	}
)
