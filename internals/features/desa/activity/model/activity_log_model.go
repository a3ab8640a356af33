package model

import (
	"time"
)

// ActivityLogModel bersifat append-only: tidak pernah di-update
// atau dihapus oleh aplikasi.
type ActivityLogModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Action      string    `gorm:"type:varchar(10);not null" json:"action"`
	Description string    `gorm:"type:text;not null" json:"description"`
	EntityType  *string   `gorm:"type:varchar(30)" json:"entityType,omitempty"`
	EntityID    *uint     `gorm:"column:entity_id" json:"entityId,omitempty"`
	UserID      *uint     `gorm:"index" json:"userId,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (ActivityLogModel) TableName() string {
	return "activity_log"
}
