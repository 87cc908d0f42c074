package db

import (
	"time"

	"gorm.io/gorm"
)

type BridgeDao interface {
	ResourceTypeDB
	ParcelDB
	StateDB
}

type BridgeSvcDB struct {
	db *gorm.DB
}

func NewBridgeSvcDB(db *gorm.DB) BridgeDao {
	return &BridgeSvcDB{
		db,
	}
}

type ResourceTypeDB interface {
	GetResourceType(resourceID string) (*ResourceType, error)
	UpsertResourceType(resourceID, amountPerUnit string) error
	DeactivateResourceType(resourceID string) error
	CountResourceTypes() (total int64, active int64, err error)
}

func (d *BridgeSvcDB) GetResourceType(resourceID string) (*ResourceType, error) {
	rt := ResourceType{}
	err := d.db.Model(ResourceType{}).Where("resource_id = ?", resourceID).Take(&rt).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	return &rt, nil
}

func (d *BridgeSvcDB) UpsertResourceType(resourceID, amountPerUnit string) error {
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		rt := ResourceType{}
		err := dbTx.Model(ResourceType{}).Where("resource_id = ?", resourceID).Take(&rt).Error
		if err == gorm.ErrRecordNotFound {
			return dbTx.Create(&ResourceType{
				ResourceID:    resourceID,
				AmountPerUnit: amountPerUnit,
				Active:        true,
				CreatedTime:   time.Now().Unix(),
			}).Error
		}
		if err != nil {
			return err
		}
		return dbTx.Model(ResourceType{}).Where("resource_id = ?", resourceID).Updates(
			map[string]interface{}{
				"amount_per_unit": amountPerUnit,
				"active":          true,
				"updated_time":    time.Now().Unix(),
			}).Error
	})
}

func (d *BridgeSvcDB) DeactivateResourceType(resourceID string) error {
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		return dbTx.Model(ResourceType{}).Where("resource_id = ?", resourceID).Updates(
			map[string]interface{}{
				"active":       false,
				"updated_time": time.Now().Unix(),
			}).Error
	})
}

func (d *BridgeSvcDB) CountResourceTypes() (int64, int64, error) {
	var total, active int64
	if err := d.db.Model(ResourceType{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := d.db.Model(ResourceType{}).Where("active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

type ParcelDB interface {
	GetParcel(parcelKey string) (*Parcel, error)
	CreateParcel(p *Parcel) error
	CountParcels() (int64, error)
}

func (d *BridgeSvcDB) GetParcel(parcelKey string) (*Parcel, error) {
	parcel := Parcel{}
	err := d.db.Model(Parcel{}).Where("parcel_key = ?", parcelKey).Take(&parcel).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	return &parcel, nil
}

func (d *BridgeSvcDB) CreateParcel(p *Parcel) error {
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		if p.CreatedTime == 0 {
			p.CreatedTime = time.Now().Unix()
		}
		err := dbTx.Create(p).Error
		if err != nil && IsDuplicateEntryErr(err) {
			return ErrDuplicateParcelKey
		}
		return err
	})
}

func (d *BridgeSvcDB) CountParcels() (int64, error) {
	var count int64
	if err := d.db.Model(Parcel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type StateDB interface {
	GetBridgeState() (*BridgeState, error)
	SetTerminated() error
}

func (d *BridgeSvcDB) GetBridgeState() (*BridgeState, error) {
	state := BridgeState{}
	err := d.db.Model(BridgeState{}).Take(&state).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	return &state, nil
}

func (d *BridgeSvcDB) SetTerminated() error {
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		state := BridgeState{}
		err := dbTx.Model(BridgeState{}).Take(&state).Error
		if err == gorm.ErrRecordNotFound {
			return dbTx.Create(&BridgeState{Terminated: true}).Error
		}
		if err != nil {
			return err
		}
		return dbTx.Model(BridgeState{}).Where("id = ?", state.Id).Updates(
			map[string]interface{}{"terminated": true}).Error
	})
}

func AutoMigrateDB(db *gorm.DB) {
	var err error
	if err = db.AutoMigrate(&ResourceType{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&Parcel{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&BridgeState{}); err != nil {
		panic(err)
	}
}
