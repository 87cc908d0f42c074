package db

import (
	"sync"
	"time"
)

// Compile-time interface check.
var _ BridgeDao = (*MemoryStore)(nil)

// MemoryStore is an in-process BridgeDao for local runs and tests, with the
// same row semantics as the gorm-backed store.
type MemoryStore struct {
	mu            sync.Mutex
	nextID        int64
	resourceTypes map[string]*ResourceType
	parcels       map[string]*Parcel
	state         BridgeState
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:        1,
		resourceTypes: make(map[string]*ResourceType),
		parcels:       make(map[string]*Parcel),
	}
}

func (m *MemoryStore) GetResourceType(resourceID string) (*ResourceType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rt, ok := m.resourceTypes[resourceID]; ok {
		cp := *rt
		return &cp, nil
	}
	return &ResourceType{}, nil
}

func (m *MemoryStore) UpsertResourceType(resourceID, amountPerUnit string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rt, ok := m.resourceTypes[resourceID]; ok {
		rt.AmountPerUnit = amountPerUnit
		rt.Active = true
		rt.UpdatedTime = time.Now().Unix()
		return nil
	}
	m.resourceTypes[resourceID] = &ResourceType{
		Id:            m.allocID(),
		ResourceID:    resourceID,
		AmountPerUnit: amountPerUnit,
		Active:        true,
		CreatedTime:   time.Now().Unix(),
	}
	return nil
}

func (m *MemoryStore) DeactivateResourceType(resourceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rt, ok := m.resourceTypes[resourceID]; ok {
		rt.Active = false
		rt.UpdatedTime = time.Now().Unix()
	}
	return nil
}

func (m *MemoryStore) CountResourceTypes() (int64, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var active int64
	for _, rt := range m.resourceTypes {
		if rt.Active {
			active++
		}
	}
	return int64(len(m.resourceTypes)), active, nil
}

func (m *MemoryStore) GetParcel(parcelKey string) (*Parcel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.parcels[parcelKey]; ok {
		cp := *p
		return &cp, nil
	}
	return &Parcel{}, nil
}

func (m *MemoryStore) CreateParcel(p *Parcel) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.parcels[p.ParcelKey]; ok {
		return ErrDuplicateParcelKey
	}
	cp := *p
	cp.Id = m.allocID()
	if cp.CreatedTime == 0 {
		cp.CreatedTime = time.Now().Unix()
	}
	m.parcels[cp.ParcelKey] = &cp
	return nil
}

func (m *MemoryStore) CountParcels() (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.parcels)), nil
}

func (m *MemoryStore) GetBridgeState() (*BridgeState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := m.state
	return &cp, nil
}

func (m *MemoryStore) SetTerminated() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Id == 0 {
		m.state.Id = m.allocID()
	}
	m.state.Terminated = true
	return nil
}

func (m *MemoryStore) allocID() int64 {
	id := m.nextID
	m.nextID++
	return id
}
