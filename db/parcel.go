package db

// Parcel records one inbound deposit pending redemption. A parcel key is
// written exactly once; the unique index is the storage-level backstop behind
// the controller's duplicate check.
type Parcel struct {
	Id          int64
	ParcelKey   string `gorm:"NOT NULL;uniqueIndex:idx_parcel_key;size:66"`
	ResourceID  string `gorm:"NOT NULL;index:idx_parcel_rid;size:66"`
	Units       string `gorm:"NOT NULL;size:80"` // decimal string, bridge units
	CreatedTime int64  `gorm:"NOT NULL"`
}

func (*Parcel) TableName() string {
	return "parcel"
}

func (p *Parcel) Exists() bool {
	return p.Id != 0
}
