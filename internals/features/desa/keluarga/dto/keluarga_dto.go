// internals/features/desa/keluarga/dto/keluarga_dto.go
package dto

import (
	"strings"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/keluarga/model"
)

/* ===================== REQUESTS ===================== */

type CreateKeluargaRequest struct {
	NoKK           string  `json:"noKK" validate:"required,len=16,numeric"`
	KepalaKeluarga string  `json:"kepalaKeluarga" validate:"required,min=2,max=100"`
	Alamat         string  `json:"alamat" validate:"required"`
	RT             string  `json:"rt" validate:"required,max=5"`
	RW             string  `json:"rw" validate:"required,max=5"`
	KodePos        *string `json:"kodePos" validate:"omitempty,max=10"`
	DusunID        *uint   `json:"dusunId" validate:"omitempty"`
}

func (r CreateKeluargaRequest) ToModel() *model.KeluargaModel {
	return &model.KeluargaModel{
		NoKK:           strings.TrimSpace(r.NoKK),
		KepalaKeluarga: strings.TrimSpace(r.KepalaKeluarga),
		Alamat:         strings.TrimSpace(r.Alamat),
		RT:             strings.TrimSpace(r.RT),
		RW:             strings.TrimSpace(r.RW),
		KodePos:        r.KodePos,
		DusunID:        r.DusunID,
	}
}

type UpdateKeluargaRequest struct {
	KepalaKeluarga *string `json:"kepalaKeluarga" validate:"omitempty,min=2,max=100"`
	Alamat         *string `json:"alamat" validate:"omitempty"`
	RT             *string `json:"rt" validate:"omitempty,max=5"`
	RW             *string `json:"rw" validate:"omitempty,max=5"`
	KodePos        *string `json:"kodePos" validate:"omitempty,max=10"`
	DusunID        *uint   `json:"dusunId" validate:"omitempty"`
}

// ApplyToModel: terapkan hanya field yang dikirim
func (r *UpdateKeluargaRequest) ApplyToModel(m *model.KeluargaModel) {
	if r.KepalaKeluarga != nil {
		m.KepalaKeluarga = strings.TrimSpace(*r.KepalaKeluarga)
	}
	if r.Alamat != nil {
		m.Alamat = strings.TrimSpace(*r.Alamat)
	}
	if r.RT != nil {
		m.RT = strings.TrimSpace(*r.RT)
	}
	if r.RW != nil {
		m.RW = strings.TrimSpace(*r.RW)
	}
	if r.KodePos != nil {
		m.KodePos = r.KodePos
	}
	if r.DusunID != nil {
		m.DusunID = r.DusunID
	}
}

/* ===================== RESPONSES ===================== */

// KeluargaItem: baris listing + jumlah anggota turunan.
type KeluargaItem struct {
	model.KeluargaModel
	JumlahAnggota int64 `json:"jumlahAnggota"`
}
