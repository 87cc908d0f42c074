package db

// ResourceType is one entry of the bridgeable resource registry. A row exists
// once the resource id has ever been defined; rows are never deleted so that
// historical parcels stay resolvable after removal.
type ResourceType struct {
	Id            int64
	ResourceID    string `gorm:"NOT NULL;uniqueIndex:idx_resource_type_rid;size:66"`
	AmountPerUnit string `gorm:"NOT NULL;size:80"` // decimal string, raw ledger amount per bridge unit
	Active        bool   `gorm:"NOT NULL"`
	CreatedTime   int64  `gorm:"NOT NULL"`
	UpdatedTime   int64
}

func (*ResourceType) TableName() string {
	return "resource_type"
}

// Exists reports whether the row was ever persisted, i.e. the resource type
// was defined at least once.
func (r *ResourceType) Exists() bool {
	return r.Id != 0
}
