package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ResourceID identifies a bridgeable token on the economy ledger. Token ids
// are 256-bit values, carried as 32-byte words.
type ResourceID = common.Hash

// ParcelKey is the depositor-supplied commitment a parcel is registered
// under, typically the hash of a redemption secret.
type ParcelKey = common.Hash

// Ack is the acknowledgement value a deposit receiver must return for the
// ledger to finalize an inbound transfer.
type Ack [4]byte

// NoParcelKey is the reserved sentinel key. Deposits tagged with it bypass
// parcel bookkeeping entirely and are treated as unconditional top-ups of the
// bridge's holdings. It is never registered as a parcel.
var NoParcelKey = ParcelKey{}

var (
	// DepositAck finalizes a single-item deposit notification.
	DepositAck = selector("onTokenDeposit(address,address,uint256,uint256,bytes)")

	// BatchDepositAck finalizes a multi-item deposit notification.
	BatchDepositAck = selector("onTokenBatchDeposit(address,address,uint256[],uint256[],bytes)")

	// MultiTokenInterfaceID is the capability the economy ledger must report
	// for the bridge to accept it at construction time.
	MultiTokenInterfaceID = selector("multiToken(uint256)")
)

func selector(signature string) Ack {
	var ack Ack
	copy(ack[:], crypto.Keccak256([]byte(signature))[:4])
	return ack
}
