// internals/features/desa/penduduk/controller/penduduk_controller.go
package controller

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityService "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/activity/service"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/dto"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/model"
	suratModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/model"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/constants"
	helper "github.com/syrlramadhan/desa-tirongan-atas/internals/helpers"
)

type PendudukController struct {
	DB *gorm.DB
}

func NewPendudukController(db *gorm.DB) *PendudukController {
	return &PendudukController{DB: db}
}

var validatePenduduk = validator.New()

// ===================== LIST =====================
// GET /api/penduduk?page&limit&search&jenisKelamin
func (h *PendudukController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	search := strings.TrimSpace(c.Query("search"))
	jenisKelamin := strings.TrimSpace(c.Query("jenisKelamin"))

	tx := h.DB.Model(&model.PendudukModel{})
	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where("nama LIKE ? OR nik LIKE ? OR alamat LIKE ?", like, like, like)
	}
	if jenisKelamin != "" {
		tx = tx.Where("jenis_kelamin = ?", jenisKelamin)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count penduduk: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penduduk")
	}

	var rows []model.PendudukModel
	if err := tx.
		Preload("Keluarga").
		Order("created_at DESC").
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list penduduk: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penduduk")
	}

	items := make([]dto.PendudukItem, 0, len(rows))
	for _, m := range rows {
		items = append(items, dto.NewPendudukItem(m))
	}

	// statistik dihitung atas seluruh tabel, bukan subset terfilter
	var totalAll, lakiLaki, perempuan int64
	if err := h.DB.Model(&model.PendudukModel{}).Count(&totalAll).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penduduk")
	}
	if err := h.DB.Model(&model.PendudukModel{}).
		Where("jenis_kelamin = ?", constants.JenisKelaminLakiLaki).Count(&lakiLaki).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penduduk")
	}
	if err := h.DB.Model(&model.PendudukModel{}).
		Where("jenis_kelamin = ?", constants.JenisKelaminPerempuan).Count(&perempuan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penduduk")
	}

	return c.JSON(fiber.Map{
		"penduduk":   items,
		"pagination": helper.BuildPagination(total, p.Page, p.Limit),
		"stats": fiber.Map{
			"total":     totalAll,
			"lakiLaki":  lakiLaki,
			"perempuan": perempuan,
		},
	})
}

// ===================== DETAIL =====================
// GET /api/penduduk/:id
func (h *PendudukController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.PendudukModel
	if err := h.DB.Preload("Keluarga").First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penduduk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penduduk")
	}

	var suratList []suratModel.SuratModel
	if err := h.DB.
		Where("penduduk_id = ?", row.ID).
		Order("created_at DESC").
		Limit(5).
		Find(&suratList).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data penduduk")
	}

	return helper.JsonData(c, struct {
		model.PendudukModel
		SuratList []suratModel.SuratModel `json:"suratList"`
	}{row, suratList})
}

// ===================== CREATE =====================
// POST /api/penduduk
func (h *PendudukController) Create(c *fiber.Ctx) error {
	var req dto.CreatePendudukRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validatePenduduk.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// cek unik NIK sebelum insert
	var existing model.PendudukModel
	err := h.DB.Where("nik = ?", strings.TrimSpace(req.NIK)).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "NIK sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan data penduduk")
	}

	row := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		return activityService.Record(tx, constants.ActionCreate,
			"Data penduduk baru ditambahkan - "+row.Nama, constants.EntityPenduduk, row.ID, nil)
	}); err != nil {
		log.Printf("[ERROR] create penduduk: %v", err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "NIK sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan data penduduk")
	}

	return helper.JsonCreated(c, row)
}

// ===================== UPDATE (partial) =====================
// PUT /api/penduduk/:id
func (h *PendudukController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdatePendudukRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validatePenduduk.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row model.PendudukModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penduduk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data penduduk")
	}

	req.ApplyToModel(&row)

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		return activityService.Record(tx, constants.ActionUpdate,
			"Data penduduk diperbarui - "+row.Nama, constants.EntityPenduduk, row.ID, nil)
	}); err != nil {
		log.Printf("[ERROR] update penduduk: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data penduduk")
	}

	return helper.JsonData(c, row)
}

// ===================== DELETE =====================
// DELETE /api/penduduk/:id
func (h *PendudukController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.PendudukModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penduduk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data penduduk")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PendudukModel{}, row.ID).Error; err != nil {
			return err
		}
		return activityService.Record(tx, constants.ActionDelete,
			"Data penduduk dihapus - "+row.Nama, constants.EntityPenduduk, row.ID, nil)
	}); err != nil {
		log.Printf("[ERROR] delete penduduk: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data penduduk")
	}

	return helper.JsonMessage(c, "Penduduk berhasil dihapus")
}
