package db

// BridgeState is a singleton row carrying the one-way terminated flag.
type BridgeState struct {
	Id         int64
	Terminated bool `gorm:"NOT NULL"`
}

func (*BridgeState) TableName() string {
	return "bridge_state"
}
