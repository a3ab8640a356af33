// internals/features/desa/dashboard/controller/dashboard_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/constants"
	activityService "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/activity/service"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/dashboard/dto"
	keluargaModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/keluarga/model"
	pendudukModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/model"
	profilModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/model"
	suratModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/model"
	wilayahModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/wilayah/model"
	helper "github.com/syrlramadhan/desa-tirongan-atas/internals/helpers"
)

type DashboardController struct {
	DB    *gorm.DB
	Clock helper.Clock
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db, Clock: helper.NewClock()}
}

// ===================== DASHBOARD =====================
// GET /api/dashboard
//
// Semua angka surat diskopkan ke bulan berjalan; angka penduduk,
// keluarga, dan wilayah dihitung atas seluruh tabel.
func (h *DashboardController) Get(c *fiber.Ctx) error {
	now := h.Clock.Now()
	monthStart, monthEnd := helper.MonthRange(now)

	var resp dto.DashboardResponse

	count := func(q *gorm.DB, dst *int64) error { return q.Count(dst).Error }

	if err := count(h.DB.Model(&pendudukModel.PendudukModel{}), &resp.Penduduk.Total); err != nil {
		return h.fail(c, err)
	}
	if err := count(h.DB.Model(&pendudukModel.PendudukModel{}).
		Where("jenis_kelamin = ?", constants.JenisKelaminLakiLaki), &resp.Penduduk.LakiLaki); err != nil {
		return h.fail(c, err)
	}
	if err := count(h.DB.Model(&pendudukModel.PendudukModel{}).
		Where("jenis_kelamin = ?", constants.JenisKelaminPerempuan), &resp.Penduduk.Perempuan); err != nil {
		return h.fail(c, err)
	}
	if err := count(h.DB.Model(&pendudukModel.PendudukModel{}).
		Where("created_at >= ? AND created_at < ?", monthStart, monthEnd), &resp.Penduduk.PertumbuhanBulanIni); err != nil {
		return h.fail(c, err)
	}

	if err := count(h.DB.Model(&keluargaModel.KeluargaModel{}), &resp.Keluarga.Total); err != nil {
		return h.fail(c, err)
	}

	if err := count(h.DB.Model(&wilayahModel.DusunModel{}), &resp.Wilayah.Dusun); err != nil {
		return h.fail(c, err)
	}
	if err := count(h.DB.Model(&wilayahModel.RWModel{}), &resp.Wilayah.RW); err != nil {
		return h.fail(c, err)
	}
	if err := count(h.DB.Model(&wilayahModel.RTModel{}), &resp.Wilayah.RT); err != nil {
		return h.fail(c, err)
	}

	suratBulanIni := func() *gorm.DB {
		return h.DB.Model(&suratModel.SuratModel{}).
			Where("created_at >= ? AND created_at < ?", monthStart, monthEnd)
	}
	if err := count(suratBulanIni(), &resp.Surat.TotalBulanIni); err != nil {
		return h.fail(c, err)
	}
	if err := count(suratBulanIni().Where("status = ?", constants.StatusSuratSelesai), &resp.Surat.Selesai); err != nil {
		return h.fail(c, err)
	}
	if err := count(suratBulanIni().Where("status = ?", constants.StatusSuratPending), &resp.Surat.Pending); err != nil {
		return h.fail(c, err)
	}
	resp.Surat.Proses = resp.Surat.TotalBulanIni - resp.Surat.Selesai - resp.Surat.Pending

	resp.Surat.ByJenis = make([]dto.SuratByJenis, 0)
	if err := suratBulanIni().
		Select("jenis_surat AS jenis, COUNT(*) AS count").
		Group("jenis_surat").
		Order("count DESC").
		Scan(&resp.Surat.ByJenis).Error; err != nil {
		return h.fail(c, err)
	}

	activities, err := activityService.Recent(h.DB, 5)
	if err != nil {
		return h.fail(c, err)
	}
	resp.RecentActivities = activities

	var profil profilModel.ProfilDesaModel
	switch err := h.DB.Order("id ASC").First(&profil).Error; {
	case err == nil:
		resp.ProfilDesa = &profil
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.ProfilDesa = nil
	default:
		return h.fail(c, err)
	}

	return c.JSON(resp)
}

func (h *DashboardController) fail(c *fiber.Ctx, err error) error {
	log.Printf("[ERROR] dashboard: %v", err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data dashboard")
}
