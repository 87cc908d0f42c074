package bridge

import (
	"math/big"

	"github.com/gamebridge-labs/gamebridge/types"
)

// Listener observes registry lifecycle events. Delivery is synchronous,
// inside the operation that caused the event, after its state change has
// committed.
type Listener interface {
	ResourceTypeDefined(resourceID types.ResourceID, amountPerUnit *big.Int)
	ResourceTypeRemoved(resourceID types.ResourceID)
}

func (c *Controller) emitDefined(resourceID types.ResourceID, amountPerUnit *big.Int) {
	for _, l := range c.listeners {
		l.ResourceTypeDefined(resourceID, amountPerUnit)
	}
}

func (c *Controller) emitRemoved(resourceID types.ResourceID) {
	for _, l := range c.listeners {
		l.ResourceTypeRemoved(resourceID)
	}
}
