package model

import (
	"time"
)

// ProfilDesaModel adalah singleton: satu baris per instalasi,
// diakses lewat get-or-create (lihat controller).
type ProfilDesaModel struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	NamaDesa       string    `gorm:"type:varchar(100);not null" json:"namaDesa"`
	KodeDesa       string    `gorm:"type:varchar(20);not null" json:"kodeDesa"`
	Kecamatan      string    `gorm:"type:varchar(100);not null" json:"kecamatan"`
	Kabupaten      string    `gorm:"type:varchar(100);not null" json:"kabupaten"`
	Provinsi       string    `gorm:"type:varchar(100);not null" json:"provinsi"`
	KodePos        string    `gorm:"type:varchar(10);not null" json:"kodePos"`
	Alamat         string    `gorm:"type:text;not null" json:"alamat"`
	Telepon        *string   `gorm:"type:varchar(20)" json:"telepon,omitempty"`
	Email          *string   `gorm:"type:varchar(100)" json:"email,omitempty"`
	Website        *string   `gorm:"type:varchar(100)" json:"website,omitempty"`
	KepalaDesaNama string    `gorm:"type:varchar(100);not null" json:"kepalaDesaNama"`
	KepalaDesaNip  *string   `gorm:"column:kepala_desa_nip;type:varchar(30)" json:"kepalaDesaNip,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ProfilDesaModel) TableName() string {
	return "profil_desa"
}
