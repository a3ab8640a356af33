// internals/features/desa/penduduk/dto/penduduk_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/model"
)

/* ===================== REQUESTS ===================== */

type CreatePendudukRequest struct {
	NIK              string  `json:"nik" validate:"required,len=16,numeric"`
	Nama             string  `json:"nama" validate:"required,min=2,max=100"`
	TempatLahir      string  `json:"tempatLahir" validate:"required"`
	TanggalLahir     string  `json:"tanggalLahir" validate:"required,datetime=2006-01-02"`
	JenisKelamin     string  `json:"jenisKelamin" validate:"required,oneof=L P"`
	GolonganDarah    *string `json:"golonganDarah" validate:"omitempty,oneof=A B AB O"`
	Agama            string  `json:"agama" validate:"required"`
	StatusPerkawinan string  `json:"statusPerkawinan" validate:"required"`
	Pekerjaan        string  `json:"pekerjaan" validate:"required"`
	Pendidikan       string  `json:"pendidikan" validate:"required"`
	Kewarganegaraan  string  `json:"kewarganegaraan" validate:"omitempty"`
	Alamat           string  `json:"alamat" validate:"required"`
	RT               string  `json:"rt" validate:"required,max=5"`
	RW               string  `json:"rw" validate:"required,max=5"`
	KeluargaID       *uint   `json:"keluargaId" validate:"omitempty"`
	StatusKeluarga   *string `json:"statusKeluarga" validate:"omitempty"`
}

func (r CreatePendudukRequest) ToModel() *model.PendudukModel {
	lahir, _ := time.Parse("2006-01-02", strings.TrimSpace(r.TanggalLahir))

	kwn := strings.TrimSpace(r.Kewarganegaraan)
	if kwn == "" {
		kwn = "WNI"
	}

	return &model.PendudukModel{
		NIK:              strings.TrimSpace(r.NIK),
		Nama:             strings.TrimSpace(r.Nama),
		TempatLahir:      strings.TrimSpace(r.TempatLahir),
		TanggalLahir:     lahir,
		JenisKelamin:     r.JenisKelamin,
		GolonganDarah:    r.GolonganDarah,
		Agama:            r.Agama,
		StatusPerkawinan: r.StatusPerkawinan,
		Pekerjaan:        strings.TrimSpace(r.Pekerjaan),
		Pendidikan:       r.Pendidikan,
		Kewarganegaraan:  kwn,
		Alamat:           strings.TrimSpace(r.Alamat),
		RT:               strings.TrimSpace(r.RT),
		RW:               strings.TrimSpace(r.RW),
		KeluargaID:       r.KeluargaID,
		StatusKeluarga:   r.StatusKeluarga,
	}
}

/* ===================== UPDATE (partial) ===================== */

type UpdatePendudukRequest struct {
	Nama             *string `json:"nama" validate:"omitempty,min=2,max=100"`
	TempatLahir      *string `json:"tempatLahir" validate:"omitempty"`
	TanggalLahir     *string `json:"tanggalLahir" validate:"omitempty,datetime=2006-01-02"`
	JenisKelamin     *string `json:"jenisKelamin" validate:"omitempty,oneof=L P"`
	GolonganDarah    *string `json:"golonganDarah" validate:"omitempty,oneof=A B AB O"`
	Agama            *string `json:"agama" validate:"omitempty"`
	StatusPerkawinan *string `json:"statusPerkawinan" validate:"omitempty"`
	Pekerjaan        *string `json:"pekerjaan" validate:"omitempty"`
	Pendidikan       *string `json:"pendidikan" validate:"omitempty"`
	Alamat           *string `json:"alamat" validate:"omitempty"`
	RT               *string `json:"rt" validate:"omitempty,max=5"`
	RW               *string `json:"rw" validate:"omitempty,max=5"`
	KeluargaID       *uint   `json:"keluargaId" validate:"omitempty"`
	StatusKeluarga   *string `json:"statusKeluarga" validate:"omitempty"`
}

// ApplyToModel: terapkan hanya field yang dikirim
func (r *UpdatePendudukRequest) ApplyToModel(m *model.PendudukModel) {
	if r.Nama != nil {
		m.Nama = strings.TrimSpace(*r.Nama)
	}
	if r.TempatLahir != nil {
		m.TempatLahir = strings.TrimSpace(*r.TempatLahir)
	}
	if r.TanggalLahir != nil {
		if parsed, err := time.Parse("2006-01-02", strings.TrimSpace(*r.TanggalLahir)); err == nil {
			m.TanggalLahir = parsed
		}
	}
	if r.JenisKelamin != nil {
		m.JenisKelamin = *r.JenisKelamin
	}
	if r.GolonganDarah != nil {
		m.GolonganDarah = r.GolonganDarah
	}
	if r.Agama != nil {
		m.Agama = *r.Agama
	}
	if r.StatusPerkawinan != nil {
		m.StatusPerkawinan = *r.StatusPerkawinan
	}
	if r.Pekerjaan != nil {
		m.Pekerjaan = strings.TrimSpace(*r.Pekerjaan)
	}
	if r.Pendidikan != nil {
		m.Pendidikan = *r.Pendidikan
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
	if r.KeluargaID != nil {
		m.KeluargaID = r.KeluargaID
	}
	if r.StatusKeluarga != nil {
		m.StatusKeluarga = r.StatusKeluarga
	}
}

/* ===================== RESPONSES ===================== */

// KeluargaRef: ringkasan keluarga untuk baris listing.
type KeluargaRef struct {
	NoKK           string `json:"noKK"`
	KepalaKeluarga string `json:"kepalaKeluarga"`
}

type PendudukItem struct {
	model.PendudukModel
	Keluarga *KeluargaRef `json:"keluarga,omitempty"`
}

func NewPendudukItem(m model.PendudukModel) PendudukItem {
	item := PendudukItem{PendudukModel: m}
	if m.Keluarga != nil {
		item.Keluarga = &KeluargaRef{
			NoKK:           m.Keluarga.NoKK,
			KepalaKeluarga: m.Keluarga.KepalaKeluarga,
		}
	}
	item.PendudukModel.Keluarga = nil
	return item
}
