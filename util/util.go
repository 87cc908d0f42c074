package util

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ParseResourceID accepts a resource id as either a 0x-prefixed hex word or a
// decimal 256-bit integer and normalizes it to a 32-byte value.
func ParseResourceID(str string) (common.Hash, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return common.Hash{}, fmt.Errorf("empty resource id")
	}
	if strings.HasPrefix(str, "0x") || strings.HasPrefix(str, "0X") {
		bz, err := hexutil.Decode(str)
		if err != nil {
			return common.Hash{}, err
		}
		if len(bz) > common.HashLength {
			return common.Hash{}, fmt.Errorf("resource id longer than %d bytes", common.HashLength)
		}
		return common.BytesToHash(bz), nil
	}
	n, ok := new(big.Int).SetString(str, 10)
	if !ok {
		return common.Hash{}, fmt.Errorf("invalid decimal resource id %q", str)
	}
	if n.Sign() < 0 || n.BitLen() > 256 {
		return common.Hash{}, fmt.Errorf("resource id out of range")
	}
	return common.BigToHash(n), nil
}

// ParseParcelKeyHex parses a 0x-prefixed 32-byte parcel key.
func ParseParcelKeyHex(str string) (common.Hash, error) {
	bz, err := hexutil.Decode(strings.TrimSpace(str))
	if err != nil {
		return common.Hash{}, err
	}
	if len(bz) != common.HashLength {
		return common.Hash{}, fmt.Errorf("parcel key must be %d bytes, got %d", common.HashLength, len(bz))
	}
	return common.BytesToHash(bz), nil
}

// BigToString converts an amount to its decimal column representation. Nil is
// stored as zero.
func BigToString(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.String()
}

// StringToBig converts a decimal column value back to an amount.
func StringToBig(str string) (*big.Int, error) {
	if str == "" {
		return new(big.Int), nil
	}
	n, ok := new(big.Int).SetString(str, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount %q", str)
	}
	return n, nil
}
