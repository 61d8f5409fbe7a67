package models

import "time"

// Snapshot is the persistent-store row: a whole-object JSON value under a
// fixed key, last-write-wins. No partial updates.
type Snapshot struct {
	Key       string    `gorm:"primaryKey;type:text" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `gorm:"column:updatedAt" json:"updatedAt"`
}

func (Snapshot) TableName() string {
	return "snapshots"
}
