package model

import (
	"time"

	keluargaModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/keluarga/model"
)

type PendudukModel struct {
	ID               uint                         `gorm:"primaryKey" json:"id"`
	NIK              string                       `gorm:"column:nik;type:varchar(16);uniqueIndex;not null" json:"nik"`
	Nama             string                       `gorm:"type:varchar(100);not null" json:"nama"`
	TempatLahir      string                       `gorm:"type:varchar(100);not null" json:"tempatLahir"`
	TanggalLahir     time.Time                    `gorm:"not null" json:"tanggalLahir"`
	JenisKelamin     string                       `gorm:"type:varchar(1);not null" json:"jenisKelamin"`
	GolonganDarah    *string                      `gorm:"type:varchar(3)" json:"golonganDarah,omitempty"`
	Agama            string                       `gorm:"type:varchar(20);not null" json:"agama"`
	StatusPerkawinan string                       `gorm:"type:varchar(20);not null" json:"statusPerkawinan"`
	Pekerjaan        string                       `gorm:"type:varchar(100);not null" json:"pekerjaan"`
	Pendidikan       string                       `gorm:"type:varchar(20);not null" json:"pendidikan"`
	Kewarganegaraan  string                       `gorm:"type:varchar(10);not null;default:'WNI'" json:"kewarganegaraan"`
	Alamat           string                       `gorm:"type:text;not null" json:"alamat"`
	RT               string                       `gorm:"column:rt;type:varchar(5);not null" json:"rt"`
	RW               string                       `gorm:"column:rw;type:varchar(5);not null" json:"rw"`
	KeluargaID       *uint                        `gorm:"index" json:"keluargaId,omitempty"`
	Keluarga         *keluargaModel.KeluargaModel `gorm:"foreignKey:KeluargaID" json:"keluarga,omitempty"`
	StatusKeluarga   *string                      `gorm:"type:varchar(20)" json:"statusKeluarga,omitempty"`
	CreatedAt        time.Time                    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time                    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (PendudukModel) TableName() string {
	return "penduduk"
}
