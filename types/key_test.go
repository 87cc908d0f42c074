package types

import (
	"bytes"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestParseParcelKey(t *testing.T) {
	want := common.HexToHash("0xa1b2c3d4e5f60718293a4b5c6d7e8f901122334455667788990011223344aabb")
	key, err := ParseParcelKey(want.Bytes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != want {
		t.Errorf("expected %s, got %s", want.Hex(), key.Hex())
	}
}

func TestParseParcelKeySentinel(t *testing.T) {
	key, err := ParseParcelKey(make([]byte, ParcelKeyLength))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != NoParcelKey {
		t.Errorf("expected the sentinel key, got %s", key.Hex())
	}
}

func TestParseParcelKeyMalformed(t *testing.T) {
	for _, size := range []int{0, 1, 31, 33, 64} {
		if _, err := ParseParcelKey(make([]byte, size)); err == nil {
			t.Errorf("expected error for %d-byte data", size)
		}
	}
}

func TestSelectorsDistinct(t *testing.T) {
	if DepositAck == (Ack{}) {
		t.Fatal("deposit ack must not be zero")
	}
	if bytes.Equal(DepositAck[:], MultiTokenInterfaceID[:]) {
		t.Fatal("deposit ack and interface id must differ")
	}
}
