package bridge

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gamebridge-labs/gamebridge/db"
	"github.com/gamebridge-labs/gamebridge/types"
	"github.com/gamebridge-labs/gamebridge/util"
)

// ParcelInfo is one registered inbound deposit. The zero value
// (Created=false) stands for "never registered".
type ParcelInfo struct {
	Created    bool
	ResourceID types.ResourceID
	Units      *big.Int
}

// ParcelBook records inbound deposits as uniquely keyed parcels. A key is
// written exactly once and never overwritten or deleted.
type ParcelBook struct {
	dao      db.ParcelDB
	registry *Registry
}

func NewParcelBook(dao db.ParcelDB, registry *Registry) *ParcelBook {
	return &ParcelBook{dao: dao, registry: registry}
}

// RegisterDeposit converts a raw deposit into bridge units and stores the
// parcel. The raw amount must divide exactly by the resource's rate so no
// remainder is ever silently discarded. The sentinel no-parcel key never
// reaches this method; the controller short-circuits it.
func (b *ParcelBook) RegisterDeposit(resourceID types.ResourceID, rawAmount *big.Int, parcelKey types.ParcelKey) (*big.Int, error) {
	rt, err := b.registry.Lookup(resourceID)
	if err != nil {
		return nil, err
	}
	if !rt.Active {
		return nil, ErrResourceNotDefined.Enrich(resourceID.Hex())
	}

	existing, err := b.dao.GetParcel(parcelKey.Hex())
	if err != nil {
		return nil, err
	}
	if existing.Exists() {
		return nil, ErrDuplicateParcel.Enrich(parcelKey.Hex())
	}

	if rawAmount == nil || rawAmount.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	units, rem := new(big.Int).QuoRem(rawAmount, rt.AmountPerUnit, new(big.Int))
	if rem.Sign() != 0 {
		return nil, ErrInvalidAmount.Enrich(rawAmount.String() + " % " + rt.AmountPerUnit.String())
	}

	err = b.dao.CreateParcel(&db.Parcel{
		ParcelKey:  parcelKey.Hex(),
		ResourceID: resourceID.Hex(),
		Units:      units.String(),
	})
	if errors.Is(err, db.ErrDuplicateParcelKey) {
		return nil, ErrDuplicateParcel.Enrich(parcelKey.Hex())
	}
	if err != nil {
		return nil, err
	}
	return units, nil
}

// Lookup is a pure read; unknown keys return the zero-valued parcel.
func (b *ParcelBook) Lookup(parcelKey types.ParcelKey) (ParcelInfo, error) {
	row, err := b.dao.GetParcel(parcelKey.Hex())
	if err != nil {
		return ParcelInfo{}, err
	}
	if !row.Exists() {
		return ParcelInfo{}, nil
	}
	units, err := util.StringToBig(row.Units)
	if err != nil {
		return ParcelInfo{}, err
	}
	return ParcelInfo{
		Created:    true,
		ResourceID: common.HexToHash(row.ResourceID),
		Units:      units,
	}, nil
}
