// internals/features/desa/dashboard/dto/dashboard_dto.go
package dto

import (
	activityModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/activity/model"
	profilModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/model"
)

type PendudukStats struct {
	Total               int64 `json:"total"`
	LakiLaki            int64 `json:"lakiLaki"`
	Perempuan           int64 `json:"perempuan"`
	PertumbuhanBulanIni int64 `json:"pertumbuhanBulanIni"`
}

type KeluargaStats struct {
	Total int64 `json:"total"`
}

type WilayahStats struct {
	Dusun int64 `json:"dusun"`
	RW    int64 `json:"rw"`
	RT    int64 `json:"rt"`
}

type SuratByJenis struct {
	Jenis string `json:"jenis"`
	Count int64  `json:"count"`
}

type SuratStats struct {
	TotalBulanIni int64          `json:"totalBulanIni"`
	Selesai       int64          `json:"selesai"`
	Pending       int64          `json:"pending"`
	Proses        int64          `json:"proses"`
	ByJenis       []SuratByJenis `json:"byJenis"`
}

type DashboardResponse struct {
	Penduduk         PendudukStats                   `json:"penduduk"`
	Keluarga         KeluargaStats                   `json:"keluarga"`
	Wilayah          WilayahStats                    `json:"wilayah"`
	Surat            SuratStats                      `json:"surat"`
	RecentActivities []activityModel.ActivityLogModel `json:"recentActivities"`
	ProfilDesa       *profilModel.ProfilDesaModel    `json:"profilDesa"`
}
