package model

import (
	"time"

	"gorm.io/datatypes"

	pendudukModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/model"
	userModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/users/user/model"
)

type SuratModel struct {
	ID          uint                         `gorm:"primaryKey" json:"id"`
	NomorSurat  string                       `gorm:"type:varchar(50);uniqueIndex;not null" json:"nomorSurat"`
	JenisSurat  string                       `gorm:"type:varchar(30);not null;index" json:"jenisSurat"`
	Kategori    string                       `gorm:"type:varchar(20);not null" json:"kategori"`
	Perihal     string                       `gorm:"type:varchar(200);not null" json:"perihal"`
	Status      string                       `gorm:"type:varchar(10);not null;default:'pending';index" json:"status"`
	Keterangan  *string                      `gorm:"type:text" json:"keterangan,omitempty"`
	DataJSON    datatypes.JSON               `gorm:"column:data_json" json:"dataJson,omitempty"`
	PendudukID  uint                         `gorm:"not null;index" json:"pendudukId"`
	Penduduk    *pendudukModel.PendudukModel `gorm:"foreignKey:PendudukID" json:"penduduk,omitempty"`
	CreatedByID uint                         `gorm:"not null" json:"createdById"`
	CreatedBy   *userModel.UserModel         `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	CreatedAt   time.Time                    `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt   time.Time                    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SuratModel) TableName() string {
	return "surat"
}
