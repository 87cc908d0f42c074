// Package economy models the external fungible multi-token ledger the bridge
// exchanges resources with. The bridge consumes it purely through capability
// interfaces; the in-memory Ledger in this package backs local runs and tests.
package economy

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gamebridge-labs/gamebridge/types"
)

// TokenLedger is the capability surface the bridge requires from the economy.
type TokenLedger interface {
	// Address identifies the ledger; deposit notifications carry it as the
	// caller and the bridge rejects notifications from anyone else.
	Address() common.Address

	// SupportsInterface is the capability discovery hook. The bridge checks
	// types.MultiTokenInterfaceID once at construction time.
	SupportsInterface(iface types.Ack) bool

	BalanceOf(owner common.Address, resourceID types.ResourceID) *big.Int

	// TransferFrom moves rawAmount of resourceID from one holder to another.
	// When the destination is a registered DepositReceiver the ledger invokes
	// its deposit notification inline and reverts the whole transfer unless
	// the acknowledgement comes back.
	TransferFrom(operator, from, to common.Address, resourceID types.ResourceID, rawAmount *big.Int, data []byte) error

	// TransferBatchFrom is the multi-item variant of TransferFrom.
	TransferBatchFrom(operator, from, to common.Address, resourceIDs []types.ResourceID, rawAmounts []*big.Int, data []byte) error
}

// DepositReceiver is implemented by contracts that accept token deposits. The
// ledger finalizes an inbound transfer only when the receiver returns
// types.DepositAck (or types.BatchDepositAck for batches) with a nil error.
type DepositReceiver interface {
	OnTokenDeposit(caller, operator, from common.Address, resourceID types.ResourceID, rawAmount *big.Int, data []byte) (types.Ack, error)
	OnTokenBatchDeposit(caller, operator, from common.Address, resourceIDs []types.ResourceID, rawAmounts []*big.Int, data []byte) (types.Ack, error)
}
