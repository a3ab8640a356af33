// internals/features/desa/wilayah/dto/wilayah_dto.go
package dto

/* ===================== REQUESTS ===================== */

// CreateWilayahRequest memakai diskriminator "type" (dusun|rw|rt)
// untuk memilih entitas yang dibuat; field lain dipakai sesuai tipe.
type CreateWilayahRequest struct {
	Type    string  `json:"type" validate:"required,oneof=dusun rw rt"`
	Nama    string  `json:"nama" validate:"required,min=2,max=100"`
	Kode    *string `json:"kode" validate:"omitempty,max=10"`  // dusun
	Nomor   string  `json:"nomor" validate:"omitempty,max=10"` // rw, rt
	Ketua   *string `json:"ketua" validate:"omitempty,max=100"`
	DusunID *uint   `json:"dusunId" validate:"omitempty"` // wajib saat type=rw
	RWID    *uint   `json:"rwId" validate:"omitempty"`    // wajib saat type=rt
}

type UpdateWilayahRequest struct {
	Nama  *string `json:"nama" validate:"omitempty,min=2,max=100"`
	Kode  *string `json:"kode" validate:"omitempty,max=10"`
	Nomor *string `json:"nomor" validate:"omitempty,max=10"`
	Ketua *string `json:"ketua" validate:"omitempty,max=100"`
}

/* ===================== RESPONSES ===================== */

type WilayahStats struct {
	TotalDusun    int   `json:"totalDusun"`
	TotalRW       int   `json:"totalRW"`
	TotalRT       int   `json:"totalRT"`
	TotalKeluarga int64 `json:"totalKeluarga"`
	TotalPenduduk int64 `json:"totalPenduduk"`
}
