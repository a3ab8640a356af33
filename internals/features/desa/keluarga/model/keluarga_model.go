package model

import (
	"time"

	wilayahModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/wilayah/model"
)

type KeluargaModel struct {
	ID             uint                     `gorm:"primaryKey" json:"id"`
	NoKK           string                   `gorm:"column:no_kk;type:varchar(16);uniqueIndex;not null" json:"noKK"`
	KepalaKeluarga string                   `gorm:"type:varchar(100);not null" json:"kepalaKeluarga"`
	Alamat         string                   `gorm:"type:text;not null" json:"alamat"`
	RT             string                   `gorm:"column:rt;type:varchar(5);not null" json:"rt"`
	RW             string                   `gorm:"column:rw;type:varchar(5);not null" json:"rw"`
	KodePos        *string                  `gorm:"type:varchar(10)" json:"kodePos,omitempty"`
	DusunID        *uint                    `gorm:"index" json:"dusunId,omitempty"`
	Dusun          *wilayahModel.DusunModel `gorm:"foreignKey:DusunID" json:"dusun,omitempty"`
	CreatedAt      time.Time                `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time                `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (KeluargaModel) TableName() string {
	return "keluarga"
}
