// internals/features/desa/profil/dto/profil_desa_dto.go
package dto

import (
	"strings"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/model"
)

type UpsertProfilDesaRequest struct {
	NamaDesa       string  `json:"namaDesa" validate:"required,min=2,max=100"`
	KodeDesa       string  `json:"kodeDesa" validate:"required,max=20"`
	Kecamatan      string  `json:"kecamatan" validate:"required,max=100"`
	Kabupaten      string  `json:"kabupaten" validate:"required,max=100"`
	Provinsi       string  `json:"provinsi" validate:"required,max=100"`
	KodePos        string  `json:"kodePos" validate:"required,max=10"`
	Alamat         string  `json:"alamat" validate:"required"`
	Telepon        *string `json:"telepon" validate:"omitempty,max=20"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Website        *string `json:"website" validate:"omitempty,max=100"`
	KepalaDesaNama string  `json:"kepalaDesaNama" validate:"required,max=100"`
	KepalaDesaNip  *string `json:"kepalaDesaNip" validate:"omitempty,max=30"`
}

// ApplyToModel menyalin seluruh field upsert ke baris singleton.
func (r UpsertProfilDesaRequest) ApplyToModel(m *model.ProfilDesaModel) {
	m.NamaDesa = strings.TrimSpace(r.NamaDesa)
	m.KodeDesa = strings.TrimSpace(r.KodeDesa)
	m.Kecamatan = strings.TrimSpace(r.Kecamatan)
	m.Kabupaten = strings.TrimSpace(r.Kabupaten)
	m.Provinsi = strings.TrimSpace(r.Provinsi)
	m.KodePos = strings.TrimSpace(r.KodePos)
	m.Alamat = strings.TrimSpace(r.Alamat)
	m.Telepon = r.Telepon
	m.Email = r.Email
	m.Website = r.Website
	m.KepalaDesaNama = strings.TrimSpace(r.KepalaDesaNama)
	m.KepalaDesaNip = r.KepalaDesaNip
}
