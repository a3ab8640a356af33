// internals/features/desa/surat/dto/surat_dto.go
package dto

import (
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/model"
)

/* ===================== REQUESTS ===================== */

// Create: nomorSurat digenerate server, status selalu mulai "pending".
type CreateSuratRequest struct {
	JenisSurat  string                 `json:"jenisSurat" validate:"required,min=2,max=30"`
	Kategori    string                 `json:"kategori" validate:"required,oneof=keterangan pengantar"`
	Perihal     string                 `json:"perihal" validate:"required,min=3,max=200"`
	Keterangan  *string                `json:"keterangan" validate:"omitempty"`
	DataJSON    map[string]interface{} `json:"dataJson" validate:"omitempty"`
	PendudukID  uint                   `json:"pendudukId" validate:"required"`
	CreatedByID *uint                  `json:"createdById" validate:"omitempty"`
}

/* ===================== UPDATE (partial) ===================== */

type UpdateSuratRequest struct {
	Status     *string                `json:"status" validate:"omitempty,oneof=pending proses selesai"`
	Keterangan *string                `json:"keterangan" validate:"omitempty"`
	DataJSON   map[string]interface{} `json:"dataJson" validate:"omitempty"`
}

/* ===================== RESPONSES ===================== */

type PendudukRef struct {
	ID   uint   `json:"id"`
	NIK  string `json:"nik"`
	Nama string `json:"nama"`
}

type CreatedByRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SuratItem struct {
	model.SuratModel
	Penduduk  *PendudukRef  `json:"penduduk,omitempty"`
	CreatedBy *CreatedByRef `json:"createdBy,omitempty"`
}

func NewSuratItem(m model.SuratModel) SuratItem {
	item := SuratItem{SuratModel: m}
	if m.Penduduk != nil {
		item.Penduduk = &PendudukRef{ID: m.Penduduk.ID, NIK: m.Penduduk.NIK, Nama: m.Penduduk.Nama}
	}
	if m.CreatedBy != nil {
		item.CreatedBy = &CreatedByRef{ID: m.CreatedBy.ID, Name: m.CreatedBy.Name}
	}
	item.SuratModel.Penduduk = nil
	item.SuratModel.CreatedBy = nil
	return item
}
