package auth

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

var (
	alice = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob   = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

func TestNewSingleOwnerRejectsZeroAddress(t *testing.T) {
	if _, err := NewSingleOwner(common.Address{}); err == nil {
		t.Fatal("expected error for zero owner")
	}
}

func TestRequireCaller(t *testing.T) {
	owner, err := NewSingleOwner(alice)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner.CurrentOwner() != alice {
		t.Errorf("expected owner %s, got %s", alice.Hex(), owner.CurrentOwner().Hex())
	}
	if err := owner.RequireCaller(alice); err != nil {
		t.Errorf("owner must be authorized: %v", err)
	}
	if err := owner.RequireCaller(bob); err == nil {
		t.Error("non-owner must be rejected")
	}
}

func TestTransferOwnership(t *testing.T) {
	owner, _ := NewSingleOwner(alice)

	if err := owner.TransferOwnership(bob, bob); err == nil {
		t.Fatal("non-owner must not transfer ownership")
	}
	if err := owner.TransferOwnership(alice, common.Address{}); err == nil {
		t.Fatal("zero address must be rejected")
	}
	if err := owner.TransferOwnership(alice, bob); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if owner.CurrentOwner() != bob {
		t.Errorf("expected owner %s, got %s", bob.Hex(), owner.CurrentOwner().Hex())
	}
	if err := owner.RequireCaller(alice); err == nil {
		t.Error("previous owner must lose authorization")
	}
}
