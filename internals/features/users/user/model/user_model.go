package model

import (
	"time"
)

type UserModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Role      string    `gorm:"type:varchar(20);not null;default:'operator'" json:"role"`
	Email     *string   `gorm:"type:varchar(100)" json:"email,omitempty"`
	Phone     *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}
