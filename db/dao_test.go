package db

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSqliteDao(t *testing.T) BridgeDao {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	AutoMigrateDB(gdb)
	return NewBridgeSvcDB(gdb)
}

func runDaoSuite(t *testing.T, dao BridgeDao) {
	rid := "0x0000000000000000000000000000000000000000000000000000000000000001"

	// Undefined resource reads as a non-existent row.
	rt, err := dao.GetResourceType(rid)
	if err != nil {
		t.Fatalf("get resource type: %v", err)
	}
	if rt.Exists() {
		t.Fatal("expected undefined resource type")
	}

	// Define, then redefine with a new rate.
	if err := dao.UpsertResourceType(rid, "65536"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	rt, err = dao.GetResourceType(rid)
	if err != nil {
		t.Fatalf("get resource type: %v", err)
	}
	if !rt.Exists() || !rt.Active || rt.AmountPerUnit != "65536" {
		t.Fatalf("unexpected row after define: %+v", rt)
	}
	if err := dao.UpsertResourceType(rid, "128"); err != nil {
		t.Fatalf("redefine: %v", err)
	}
	rt, _ = dao.GetResourceType(rid)
	if rt.AmountPerUnit != "128" || !rt.Active {
		t.Fatalf("unexpected row after redefine: %+v", rt)
	}

	// Deactivate keeps the row.
	if err := dao.DeactivateResourceType(rid); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	rt, _ = dao.GetResourceType(rid)
	if !rt.Exists() || rt.Active {
		t.Fatalf("unexpected row after deactivate: %+v", rt)
	}

	total, active, err := dao.CountResourceTypes()
	if err != nil {
		t.Fatalf("count resource types: %v", err)
	}
	if total != 1 || active != 0 {
		t.Fatalf("expected 1 total / 0 active, got %d/%d", total, active)
	}

	// Parcels: create once, second insert is a duplicate.
	key := "0x00000000000000000000000000000000000000000000000000000000000000aa"
	p, err := dao.GetParcel(key)
	if err != nil {
		t.Fatalf("get parcel: %v", err)
	}
	if p.Exists() {
		t.Fatal("expected missing parcel")
	}
	if err := dao.CreateParcel(&Parcel{ParcelKey: key, ResourceID: rid, Units: "3"}); err != nil {
		t.Fatalf("create parcel: %v", err)
	}
	if err := dao.CreateParcel(&Parcel{ParcelKey: key, ResourceID: rid, Units: "9"}); err != ErrDuplicateParcelKey {
		t.Fatalf("expected ErrDuplicateParcelKey, got %v", err)
	}
	p, _ = dao.GetParcel(key)
	if !p.Exists() || p.Units != "3" {
		t.Fatalf("first write must win: %+v", p)
	}
	count, err := dao.CountParcels()
	if err != nil || count != 1 {
		t.Fatalf("expected 1 parcel, got %d (%v)", count, err)
	}

	// Terminated flag is monotonic.
	state, err := dao.GetBridgeState()
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	if state.Terminated {
		t.Fatal("fresh store must not be terminated")
	}
	if err := dao.SetTerminated(); err != nil {
		t.Fatalf("set terminated: %v", err)
	}
	if err := dao.SetTerminated(); err != nil {
		t.Fatalf("set terminated twice: %v", err)
	}
	state, _ = dao.GetBridgeState()
	if !state.Terminated {
		t.Fatal("expected terminated state")
	}
}

func TestBridgeSvcDB(t *testing.T) {
	runDaoSuite(t, newSqliteDao(t))
}

func TestMemoryStore(t *testing.T) {
	runDaoSuite(t, NewMemoryStore())
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	key := "0x01"
	if err := store.CreateParcel(&Parcel{ParcelKey: key, ResourceID: "0x02", Units: "1"}); err != nil {
		t.Fatalf("create parcel: %v", err)
	}
	p, _ := store.GetParcel(key)
	p.Units = "999"
	again, _ := store.GetParcel(key)
	if again.Units != "1" {
		t.Fatal("returned rows must be copies")
	}
}

func TestIsDuplicateEntryErr(t *testing.T) {
	if !IsDuplicateEntryErr(fmt.Errorf("UNIQUE constraint failed: parcel.parcel_key")) {
		t.Fatal("sqlite duplicate not detected")
	}
	if !IsDuplicateEntryErr(fmt.Errorf("Error 1062: Duplicate entry 'x' for key 'idx_parcel_key'")) {
		t.Fatal("mysql duplicate not detected")
	}
	if IsDuplicateEntryErr(fmt.Errorf("some other failure")) {
		t.Fatal("false positive")
	}
}
