package bridge

import (
	"math/big"

	"github.com/gamebridge-labs/gamebridge/db"
	"github.com/gamebridge-labs/gamebridge/types"
	"github.com/gamebridge-labs/gamebridge/util"
)

// ResourceTypeInfo is the bridging configuration of one resource id.
// The zero value (Created=false) stands for "never defined".
type ResourceTypeInfo struct {
	Created       bool
	Active        bool
	AmountPerUnit *big.Int
}

// Registry maps resource ids to their bridging configuration. Entries are
// never deleted: removal only deactivates, so historical parcels stay
// resolvable against the id they were minted against.
type Registry struct {
	dao db.ResourceTypeDB
}

func NewRegistry(dao db.ResourceTypeDB) *Registry {
	return &Registry{dao: dao}
}

// Define upserts the entry to (created, active, amountPerUnit). Authorization
// and termination gating happen in the controller.
func (r *Registry) Define(resourceID types.ResourceID, amountPerUnit *big.Int) error {
	if amountPerUnit == nil || amountPerUnit.Sign() <= 0 {
		return ErrInvalidConfig
	}
	return r.dao.UpsertResourceType(resourceID.Hex(), amountPerUnit.String())
}

// Remove deactivates the entry, leaving the rate and the created mark
// untouched.
func (r *Registry) Remove(resourceID types.ResourceID) error {
	row, err := r.dao.GetResourceType(resourceID.Hex())
	if err != nil {
		return err
	}
	if !row.Exists() {
		return ErrNotFound
	}
	return r.dao.DeactivateResourceType(resourceID.Hex())
}

// Lookup is a pure read; never-defined ids return the zero-valued entry.
func (r *Registry) Lookup(resourceID types.ResourceID) (ResourceTypeInfo, error) {
	row, err := r.dao.GetResourceType(resourceID.Hex())
	if err != nil {
		return ResourceTypeInfo{}, err
	}
	if !row.Exists() {
		return ResourceTypeInfo{}, nil
	}
	rate, err := util.StringToBig(row.AmountPerUnit)
	if err != nil {
		return ResourceTypeInfo{}, err
	}
	return ResourceTypeInfo{
		Created:       true,
		Active:        row.Active,
		AmountPerUnit: rate,
	}, nil
}
