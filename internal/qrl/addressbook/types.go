package addressbook

import "github.com/goodnatureofminers/blockinsight7000-qrl/internal/qrl/model"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BalanceReader interface {
		Balance(addr model.Address) (uint64, error)
	}
	RowWriter interface {
		AddAddress(r model.AddressRecord)
		AddAddressSeen(r model.AddressSeen)
	}
	Metrics interface {
		ObserveAddressSkipped()
	}
)
