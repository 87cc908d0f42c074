package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ParcelKeyLength is the exact size of the accompanying data carried on a
// deposit. Anything else is malformed and rejects the deposit.
const ParcelKeyLength = common.HashLength

// ParseParcelKey extracts the parcel key from a deposit's accompanying data.
// The data must be exactly 32 bytes; a depositor opting out of parcel
// tracking tags the deposit with the 32 zero bytes of NoParcelKey.
func ParseParcelKey(data []byte) (ParcelKey, error) {
	if len(data) != ParcelKeyLength {
		return ParcelKey{}, fmt.Errorf("parcel key must be %d bytes, got %d", ParcelKeyLength, len(data))
	}
	return common.BytesToHash(data), nil
}
