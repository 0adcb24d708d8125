// Package addressbook tracks the addresses touched during an extraction run.
package addressbook

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/ledger"
	"github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// balanceExp scales nano-units to display units.
const balanceExp = -9

// Ledger decides between first-seen inserts and last-seen updates. The seen
// set lives for one run and is never persisted, so a second run against a
// populated destination inserts the same addresses again.
type Ledger struct {
	balances BalanceReader
	writer   RowWriter
	metrics  Metrics
	logger   *zap.Logger
	seen     map[string]struct{}
}

// New builds an empty Ledger.
func New(balances BalanceReader, writer RowWriter, metrics Metrics, logger *zap.Logger) *Ledger {
	return &Ledger{
		balances: balances,
		writer:   writer,
		metrics:  metrics,
		logger:   logger,
		seen:     make(map[string]struct{}),
	}
}

// Touch records that addr was referenced at ts. Undecodable address state is
// logged and skipped; other store failures are returned.
func (l *Ledger) Touch(addr model.Address, ts time.Time) error {
	address := addr.String()
	if _, ok := l.seen[address]; ok {
		l.writer.AddAddressSeen(model.AddressSeen{Address: address, LastSeen: ts})
		return nil
	}

	balance, err := l.balances.Balance(addr)
	if err != nil {
		var decodeErr *ledger.AddressDecodeError
		if errors.As(err, &decodeErr) {
			l.logger.Warn("skip address with undecodable state",
				zap.String("address", address),
				zap.Time("timestamp", ts),
				zap.Error(err),
			)
			if l.metrics != nil {
				l.metrics.ObserveAddressSkipped()
			}
			return nil
		}
		return fmt.Errorf("balance of %s: %w", address, err)
	}

	l.writer.AddAddress(model.AddressRecord{
		Address:   address,
		Balance:   decimal.NewFromBigInt(new(big.Int).SetUint64(balance), balanceExp),
		FirstSeen: ts,
		LastSeen:  ts,
	})
	l.seen[address] = struct{}{}
	return nil
}

// Seen returns the number of distinct addresses inserted this run.
func (l *Ledger) Seen() int {
	return len(l.seen)
}
