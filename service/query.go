package service

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/gamebridge-labs/gamebridge/bridge"
	"github.com/gamebridge-labs/gamebridge/cache"
	"github.com/gamebridge-labs/gamebridge/types"
)

// QuerySvc is the process-wide query service, set during startup.
var QuerySvc Query

// Query is the read-only surface over the bridge's persisted state, the one
// integrations poll.
type Query interface {
	GetResourceType(resourceID types.ResourceID) (bridge.ResourceTypeInfo, error)
	GetParcel(parcelKey types.ParcelKey) (bridge.ParcelInfo, error)
	GetBridgeStatus() (*BridgeStatus, error)
}

// BridgeStatus is the controller-level state a caller can observe.
type BridgeStatus struct {
	Terminated    bool           `json:"terminated"`
	LedgerAddress common.Address `json:"ledger_address"`
	BridgeAddress common.Address `json:"bridge_address"`
}

type QueryService struct {
	controller   *bridge.Controller
	cacheService cache.Cache
}

func NewQueryService(controller *bridge.Controller, cache cache.Cache) Query {
	return &QueryService{
		controller:   controller,
		cacheService: cache,
	}
}

func (q *QueryService) GetResourceType(resourceID types.ResourceID) (bridge.ResourceTypeInfo, error) {
	return q.controller.Registry().Lookup(resourceID)
}

// GetParcel serves parcel lookups through the cache. Only created parcels are
// cached: they are immutable, while a missing key may be registered later.
func (q *QueryService) GetParcel(parcelKey types.ParcelKey) (bridge.ParcelInfo, error) {
	if cached, found := q.cacheService.Get(parcelKey.Hex()); found {
		return cached.(bridge.ParcelInfo), nil
	}
	parcel, err := q.controller.Parcels().Lookup(parcelKey)
	if err != nil {
		return bridge.ParcelInfo{}, err
	}
	if parcel.Created {
		q.cacheService.Set(parcelKey.Hex(), parcel)
	}
	return parcel, nil
}

func (q *QueryService) GetBridgeStatus() (*BridgeStatus, error) {
	return &BridgeStatus{
		Terminated:    q.controller.Terminated(),
		LedgerAddress: q.controller.LedgerAddress(),
		BridgeAddress: q.controller.BridgeAddress(),
	}, nil
}
