package bridge

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gamebridge-labs/gamebridge/db"
)

func newParcelFixture(t *testing.T) (*ParcelBook, *Registry) {
	t.Helper()
	store := db.NewMemoryStore()
	registry := NewRegistry(store)
	return NewParcelBook(store, registry), registry
}

func TestRegisterDeposit(t *testing.T) {
	book, registry := newParcelFixture(t)
	if err := registry.Define(swordID, big.NewInt(0x10000)); err != nil {
		t.Fatalf("define: %v", err)
	}
	key := common.HexToHash("0x11")

	units, err := book.RegisterDeposit(swordID, new(big.Int).Mul(big.NewInt(3), big.NewInt(0x10000)), key)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if units.Cmp(big.NewInt(3)) != 0 {
		t.Fatalf("expected 3 units, got %s", units)
	}

	parcel, err := book.Lookup(key)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !parcel.Created || parcel.ResourceID != swordID || parcel.Units.Cmp(big.NewInt(3)) != 0 {
		t.Fatalf("unexpected parcel: %+v", parcel)
	}
}

func TestRegisterDepositUndefinedResource(t *testing.T) {
	book, _ := newParcelFixture(t)
	_, err := book.RegisterDeposit(swordID, big.NewInt(100), common.HexToHash("0x11"))
	if !errors.Is(err, ErrResourceNotDefined) {
		t.Fatalf("expected ErrResourceNotDefined, got %v", err)
	}
}

func TestRegisterDepositInactiveResource(t *testing.T) {
	book, registry := newParcelFixture(t)
	if err := registry.Define(swordID, big.NewInt(100)); err != nil {
		t.Fatalf("define: %v", err)
	}
	if err := registry.Remove(swordID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, err := book.RegisterDeposit(swordID, big.NewInt(100), common.HexToHash("0x11"))
	if !errors.Is(err, ErrResourceNotDefined) {
		t.Fatalf("expected ErrResourceNotDefined for inactive resource, got %v", err)
	}
}

func TestRegisterDepositInexactAmount(t *testing.T) {
	book, registry := newParcelFixture(t)
	if err := registry.Define(swordID, big.NewInt(0x10000)); err != nil {
		t.Fatalf("define: %v", err)
	}
	key := common.HexToHash("0x22")

	// 3*0x10000/256 does not divide by the rate.
	raw := new(big.Int).Div(new(big.Int).Mul(big.NewInt(3), big.NewInt(0x10000)), big.NewInt(256))
	_, err := book.RegisterDeposit(swordID, raw, key)
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	parcel, _ := book.Lookup(key)
	if parcel.Created {
		t.Fatal("failed deposit must not create a parcel")
	}
}

func TestRegisterDepositNegativeAmount(t *testing.T) {
	book, registry := newParcelFixture(t)
	if err := registry.Define(swordID, big.NewInt(100)); err != nil {
		t.Fatalf("define: %v", err)
	}
	_, err := book.RegisterDeposit(swordID, big.NewInt(-100), common.HexToHash("0x33"))
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	_, err = book.RegisterDeposit(swordID, nil, common.HexToHash("0x33"))
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for nil amount, got %v", err)
	}
}

func TestRegisterDepositDuplicateKey(t *testing.T) {
	book, registry := newParcelFixture(t)
	otherID := common.BigToHash(big.NewInt(43))
	if err := registry.Define(swordID, big.NewInt(100)); err != nil {
		t.Fatalf("define: %v", err)
	}
	if err := registry.Define(otherID, big.NewInt(7)); err != nil {
		t.Fatalf("define: %v", err)
	}
	key := common.HexToHash("0x44")

	if _, err := book.RegisterDeposit(swordID, big.NewInt(100), key); err != nil {
		t.Fatalf("register: %v", err)
	}

	// The key is burned for any resource and any amount.
	if _, err := book.RegisterDeposit(swordID, big.NewInt(100), key); !errors.Is(err, ErrDuplicateParcel) {
		t.Fatalf("expected ErrDuplicateParcel, got %v", err)
	}
	if _, err := book.RegisterDeposit(otherID, big.NewInt(21), key); !errors.Is(err, ErrDuplicateParcel) {
		t.Fatalf("expected ErrDuplicateParcel across resources, got %v", err)
	}

	// First registration is untouched.
	parcel, _ := book.Lookup(key)
	if parcel.ResourceID != swordID || parcel.Units.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("original parcel must win: %+v", parcel)
	}
}

func TestParcelLookupUnknownKey(t *testing.T) {
	book, _ := newParcelFixture(t)
	parcel, err := book.Lookup(common.HexToHash("0x55"))
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if parcel.Created {
		t.Fatal("unknown key must read as not created")
	}
}
