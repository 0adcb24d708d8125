package writebuffer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		InsertAddresses(ctx context.Context, rows []model.AddressRecord) error
		UpdateAddressesLastSeen(ctx context.Context, rows []model.AddressSeen) error
		InsertBlockMetadata(ctx context.Context, rows []model.BlockMetadataRecord) error
		InsertOtherTransactions(ctx context.Context, rows []model.OtherTransactionRecord) error
		InsertMessages(ctx context.Context, rows []model.MessageRecord) error
		InsertTokens(ctx context.Context, rows []model.TokenRecord) error
	}
	Metrics interface {
		ObserveFlush(err error, rows int, started time.Time)
	}
)
