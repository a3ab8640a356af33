// internals/features/desa/keluarga/controller/keluarga_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/constants"
	activityService "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/activity/service"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/keluarga/dto"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/keluarga/model"
	pendudukModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/model"
	helper "github.com/syrlramadhan/desa-tirongan-atas/internals/helpers"
)

type KeluargaController struct {
	DB *gorm.DB
}

func NewKeluargaController(db *gorm.DB) *KeluargaController {
	return &KeluargaController{DB: db}
}

var validateKeluarga = validator.New()

// ===================== LIST =====================
// GET /api/keluarga?page&limit&search
func (h *KeluargaController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)
	search := strings.TrimSpace(c.Query("search"))

	tx := h.DB.Model(&model.KeluargaModel{})
	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where("no_kk LIKE ? OR kepala_keluarga LIKE ? OR alamat LIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count keluarga: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keluarga")
	}

	var rows []model.KeluargaModel
	if err := tx.
		Preload("Dusun").
		Order("created_at DESC").
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list keluarga: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keluarga")
	}

	// jumlah anggota per keluarga di halaman ini (satu query grouped)
	counts := map[uint]int64{}
	if len(rows) > 0 {
		ids := make([]uint, 0, len(rows))
		for _, k := range rows {
			ids = append(ids, k.ID)
		}
		type anggotaCount struct {
			KeluargaID uint  `gorm:"column:keluarga_id"`
			Jumlah     int64 `gorm:"column:jumlah"`
		}
		var agg []anggotaCount
		if err := h.DB.Model(&pendudukModel.PendudukModel{}).
			Select("keluarga_id, COUNT(*) AS jumlah").
			Where("keluarga_id IN ?", ids).
			Group("keluarga_id").
			Find(&agg).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keluarga")
		}
		for _, a := range agg {
			counts[a.KeluargaID] = a.Jumlah
		}
	}

	items := make([]dto.KeluargaItem, 0, len(rows))
	for _, k := range rows {
		items = append(items, dto.KeluargaItem{KeluargaModel: k, JumlahAnggota: counts[k.ID]})
	}

	var totalAll, totalAnggota int64
	if err := h.DB.Model(&model.KeluargaModel{}).Count(&totalAll).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keluarga")
	}
	if err := h.DB.Model(&pendudukModel.PendudukModel{}).Count(&totalAnggota).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keluarga")
	}

	return c.JSON(fiber.Map{
		"keluarga":   items,
		"pagination": helper.BuildPagination(total, p.Page, p.Limit),
		"stats": fiber.Map{
			"total":        totalAll,
			"totalAnggota": totalAnggota,
		},
	})
}

// ===================== DETAIL =====================
// GET /api/keluarga/:id
func (h *KeluargaController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.KeluargaModel
	if err := h.DB.Preload("Dusun").First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Keluarga tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keluarga")
	}

	var anggota []pendudukModel.PendudukModel
	if err := h.DB.
		Where("keluarga_id = ?", row.ID).
		Order("created_at ASC").
		Find(&anggota).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data keluarga")
	}

	return helper.JsonData(c, struct {
		model.KeluargaModel
		Anggota []pendudukModel.PendudukModel `json:"anggota"`
	}{row, anggota})
}

// ===================== CREATE =====================
// POST /api/keluarga
func (h *KeluargaController) Create(c *fiber.Ctx) error {
	var req dto.CreateKeluargaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validateKeluarga.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// cek unik No KK sebelum insert
	var existing model.KeluargaModel
	err := h.DB.Where("no_kk = ?", strings.TrimSpace(req.NoKK)).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No KK sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan data keluarga")
	}

	row := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		return activityService.Record(tx, constants.ActionCreate,
			"Data keluarga baru ditambahkan - "+row.KepalaKeluarga, constants.EntityKeluarga, row.ID, nil)
	}); err != nil {
		log.Printf("[ERROR] create keluarga: %v", err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "No KK sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan data keluarga")
	}

	return helper.JsonCreated(c, row)
}

// ===================== UPDATE (partial) =====================
// PUT /api/keluarga/:id
func (h *KeluargaController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateKeluargaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validateKeluarga.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row model.KeluargaModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Keluarga tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data keluarga")
	}

	req.ApplyToModel(&row)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		return activityService.Record(tx, constants.ActionUpdate,
			"Data keluarga diperbarui - "+row.KepalaKeluarga, constants.EntityKeluarga, row.ID, nil)
	}); err != nil {
		log.Printf("[ERROR] update keluarga: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data keluarga")
	}

	return helper.JsonData(c, row)
}

// ===================== DELETE =====================
// DELETE /api/keluarga/:id
func (h *KeluargaController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.KeluargaModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Keluarga tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data keluarga")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// lepaskan anggota dari keluarga yang dihapus
		if err := tx.Model(&pendudukModel.PendudukModel{}).
			Where("keluarga_id = ?", row.ID).
			Update("keluarga_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.KeluargaModel{}, row.ID).Error; err != nil {
			return err
		}
		return activityService.Record(tx, constants.ActionDelete,
			"Data keluarga dihapus - "+row.KepalaKeluarga, constants.EntityKeluarga, row.ID, nil)
	}); err != nil {
		log.Printf("[ERROR] delete keluarga: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data keluarga")
	}

	return helper.JsonMessage(c, "Keluarga berhasil dihapus")
}
