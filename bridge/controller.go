package bridge

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gamebridge-labs/gamebridge/auth"
	"github.com/gamebridge-labs/gamebridge/db"
	"github.com/gamebridge-labs/gamebridge/economy"
	"github.com/gamebridge-labs/gamebridge/logging"
	"github.com/gamebridge-labs/gamebridge/metrics"
	"github.com/gamebridge-labs/gamebridge/types"
)

// Compile-time interface check.
var _ economy.DepositReceiver = (*Controller)(nil)

// Controller orchestrates the resource-type registry and the parcel book
// against the one-way terminated flag. It is the single entry point for the
// administrator's calls and for the ledger's deposit notifications.
//
// A single mutex serializes all bridge-state mutations. Ledger transfers on
// the outbound path run after the bridge lock is released; the send
// operations do not mutate bridge state, and the ledger delivers inbound
// notifications back into OnTokenDeposit under its own serialization.
type Controller struct {
	mu         sync.Mutex
	dao        db.BridgeDao
	ledger     economy.TokenLedger
	authz      auth.Authorizer
	registry   *Registry
	parcels    *ParcelBook
	bridgeAddr common.Address
	listeners  []Listener
	terminated bool
}

type Option func(*Controller)

// WithListener registers an observer for registry lifecycle events.
func WithListener(l Listener) Option {
	return func(c *Controller) {
		c.listeners = append(c.listeners, l)
	}
}

// New wires the controller against its collaborators. The ledger must report
// the multi-token capability; a ledger that does not fails construction with
// ErrInvalidEconomy rather than failing on first use.
func New(dao db.BridgeDao, ledger economy.TokenLedger, authz auth.Authorizer, bridgeAddr common.Address, opts ...Option) (*Controller, error) {
	if ledger == nil || !ledger.SupportsInterface(types.MultiTokenInterfaceID) {
		return nil, ErrInvalidEconomy
	}
	state, err := dao.GetBridgeState()
	if err != nil {
		return nil, err
	}
	registry := NewRegistry(dao)
	c := &Controller{
		dao:        dao,
		ledger:     ledger,
		authz:      authz,
		registry:   registry,
		parcels:    NewParcelBook(dao, registry),
		bridgeAddr: bridgeAddr,
		terminated: state.Terminated,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.terminated {
		metrics.TerminatedGauge.Set(1)
	}
	return c, nil
}

// Define registers or re-registers a bridgeable resource type.
func (c *Controller) Define(caller common.Address, resourceID types.ResourceID, amountPerUnit *big.Int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireOwner(caller); err != nil {
		return err
	}
	if c.terminated {
		return ErrAlreadyTerminated
	}
	if err := c.registry.Define(resourceID, amountPerUnit); err != nil {
		return err
	}
	logging.Logger.Infof("resource type defined, id=%s, amount_per_unit=%s", resourceID.Hex(), amountPerUnit.String())
	c.updateRegistryGauges()
	c.emitDefined(resourceID, new(big.Int).Set(amountPerUnit))
	return nil
}

// Remove deactivates a resource type; its definition stays on record.
func (c *Controller) Remove(caller common.Address, resourceID types.ResourceID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireOwner(caller); err != nil {
		return err
	}
	if c.terminated {
		return ErrAlreadyTerminated
	}
	if err := c.registry.Remove(resourceID); err != nil {
		return err
	}
	logging.Logger.Infof("resource type removed, id=%s", resourceID.Hex())
	c.updateRegistryGauges()
	c.emitRemoved(resourceID)
	return nil
}

// Terminate flips the one-way shutdown flag. Registry mutations and inbound
// deposits stop; outbound transfers keep working so redemptions stay payable
// after a game shuts down.
func (c *Controller) Terminate(caller common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireOwner(caller); err != nil {
		return err
	}
	if c.terminated {
		return nil
	}
	if err := c.dao.SetTerminated(); err != nil {
		return err
	}
	c.terminated = true
	metrics.TerminatedGauge.Set(1)
	logging.Logger.Infof("bridge terminated by %s", caller.Hex())
	return nil
}

// SendUnits pays out units of a resource from the bridge's own holdings,
// converting to the raw ledger amount at the registered rate. The resource
// must have been defined at some point; removal does not block payouts.
func (c *Controller) SendUnits(caller, to common.Address, resourceID types.ResourceID, units *big.Int) error {
	c.mu.Lock()
	if err := c.requireOwner(caller); err != nil {
		c.mu.Unlock()
		return err
	}
	rt, err := c.registry.Lookup(resourceID)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if !rt.Created {
		c.mu.Unlock()
		return ErrResourceNotDefined.Enrich(resourceID.Hex())
	}
	if units == nil || units.Sign() <= 0 {
		c.mu.Unlock()
		return ErrZeroAmount
	}
	rawAmount := new(big.Int).Mul(units, rt.AmountPerUnit)
	c.mu.Unlock()

	if err := c.ledger.TransferFrom(c.bridgeAddr, c.bridgeAddr, to, resourceID, rawAmount, nil); err != nil {
		return err
	}
	metrics.OutboundTransfersCounter.Inc()
	logging.Logger.Infof("sent %s units (%s raw) of %s to %s", units.String(), rawAmount.String(), resourceID.Hex(), to.Hex())
	return nil
}

// SendTokens is the raw pass-through payout, bypassing unit conversion.
func (c *Controller) SendTokens(caller, to common.Address, resourceID types.ResourceID, rawAmount *big.Int, data []byte) error {
	c.mu.Lock()
	if err := c.requireOwner(caller); err != nil {
		c.mu.Unlock()
		return err
	}
	if rawAmount == nil || rawAmount.Sign() < 0 {
		c.mu.Unlock()
		return ErrInvalidAmount.Enrich("raw transfer amount")
	}
	c.mu.Unlock()

	if err := c.ledger.TransferFrom(c.bridgeAddr, c.bridgeAddr, to, resourceID, rawAmount, data); err != nil {
		return err
	}
	metrics.OutboundTransfersCounter.Inc()
	logging.Logger.Infof("sent %s raw of %s to %s", rawAmount.String(), resourceID.Hex(), to.Hex())
	return nil
}

// OnTokenDeposit is the inbound path, invoked by the ledger whenever tokens
// move into the bridge. Returning anything but the ack makes the ledger
// revert the transfer, so every rejection here is a rejected deposit.
func (c *Controller) OnTokenDeposit(caller, operator, from common.Address, resourceID types.ResourceID, rawAmount *big.Int, data []byte) (types.Ack, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.terminated {
		metrics.RejectedDepositsCounter.WithLabelValues("terminated").Inc()
		return types.Ack{}, ErrAlreadyTerminated
	}
	if caller != c.ledger.Address() {
		metrics.RejectedDepositsCounter.WithLabelValues("invalid_sender").Inc()
		return types.Ack{}, ErrInvalidSender.Enrich(caller.Hex())
	}
	parcelKey, err := types.ParseParcelKey(data)
	if err != nil {
		metrics.RejectedDepositsCounter.WithLabelValues("malformed_data").Inc()
		return types.Ack{}, ErrMalformedData.Enrich(err.Error())
	}

	// The sentinel key funds the bridge without parcel bookkeeping. No
	// resource-type or amount validation applies on this path; it must stay
	// open for undefined resources so the administrator can pre-fund, and so
	// a depositor can voluntarily forfeit redemption tracking.
	if parcelKey == types.NoParcelKey {
		logging.Logger.Infof("untracked deposit of %s raw of %s from %s", rawAmount.String(), resourceID.Hex(), from.Hex())
		return types.DepositAck, nil
	}

	units, err := c.parcels.RegisterDeposit(resourceID, rawAmount, parcelKey)
	if err != nil {
		metrics.RejectedDepositsCounter.WithLabelValues(rejectionReason(err)).Inc()
		return types.Ack{}, err
	}
	metrics.ParcelsRegisteredCounter.Inc()
	logging.Logger.Infof("parcel registered, key=%s, resource=%s, units=%s, operator=%s, from=%s",
		parcelKey.Hex(), resourceID.Hex(), units.String(), operator.Hex(), from.Hex())
	return types.DepositAck, nil
}

// OnTokenBatchDeposit rejects multi-item deposits outright: the parcel
// protocol carries exactly one key per deposit, so batch accounting would be
// ambiguous.
func (c *Controller) OnTokenBatchDeposit(caller, operator, from common.Address, resourceIDs []types.ResourceID, rawAmounts []*big.Int, data []byte) (types.Ack, error) {
	metrics.RejectedDepositsCounter.WithLabelValues("batch").Inc()
	return types.Ack{}, ErrBatchNotSupported
}

// Terminated reports the shutdown flag.
func (c *Controller) Terminated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.terminated
}

// LedgerAddress is the configured economy ledger the bridge accepts deposit
// notifications from.
func (c *Controller) LedgerAddress() common.Address {
	return c.ledger.Address()
}

// BridgeAddress is the account holding the bridge's outbound funds.
func (c *Controller) BridgeAddress() common.Address {
	return c.bridgeAddr
}

// Registry exposes resource-type lookups.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// Parcels exposes parcel lookups.
func (c *Controller) Parcels() *ParcelBook {
	return c.parcels
}

func (c *Controller) requireOwner(caller common.Address) error {
	if err := c.authz.RequireCaller(caller); err != nil {
		return ErrUnauthorized.Enrich(caller.Hex())
	}
	return nil
}

func (c *Controller) updateRegistryGauges() {
	total, active, err := c.dao.CountResourceTypes()
	if err != nil {
		logging.Logger.Errorf("failed to count resource types, err=%s", err.Error())
		return
	}
	metrics.DefinedResourceTypesGauge.Set(float64(total))
	metrics.ActiveResourceTypesGauge.Set(float64(active))
}

func rejectionReason(err error) string {
	e, ok := err.(Err)
	if !ok {
		return "internal"
	}
	switch e.Code {
	case ErrResourceNotDefined.Code:
		return "resource_not_defined"
	case ErrDuplicateParcel.Code:
		return "duplicate_parcel"
	case ErrInvalidAmount.Code:
		return "invalid_amount"
	default:
		return "internal"
	}
}
