package model

import (
	"time"
)

// DusunModel: pembagian wilayah teratas desa.
type DusunModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"type:varchar(100);not null" json:"nama"`
	Kode      *string   `gorm:"type:varchar(10)" json:"kode,omitempty"`
	RWs       []RWModel `gorm:"foreignKey:DusunID" json:"rws,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (DusunModel) TableName() string {
	return "dusun"
}

// RWModel: rukun warga, anak dari dusun.
type RWModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"type:varchar(100);not null" json:"nama"`
	Nomor     string    `gorm:"type:varchar(10);not null" json:"nomor"`
	Ketua     *string   `gorm:"type:varchar(100)" json:"ketua,omitempty"`
	DusunID   uint      `gorm:"not null;index" json:"dusunId"`
	RTs       []RTModel `gorm:"foreignKey:RWID;constraint:OnDelete:CASCADE" json:"rts,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (RWModel) TableName() string {
	return "rw"
}

// RTModel: rukun tetangga, anak dari RW.
type RTModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"type:varchar(100);not null" json:"nama"`
	Nomor     string    `gorm:"type:varchar(10);not null" json:"nomor"`
	Ketua     *string   `gorm:"type:varchar(100)" json:"ketua,omitempty"`
	RWID      uint      `gorm:"column:rw_id;not null;index" json:"rwId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (RTModel) TableName() string {
	return "rt"
}
