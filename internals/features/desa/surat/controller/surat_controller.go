// internals/features/desa/surat/controller/surat_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/constants"
	activityService "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/activity/service"
	pendudukModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/model"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/dto"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/model"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/service"
	helper "github.com/syrlramadhan/desa-tirongan-atas/internals/helpers"
)

type SuratController struct {
	DB    *gorm.DB
	Clock helper.Clock
}

func NewSuratController(db *gorm.DB) *SuratController {
	return &SuratController{DB: db, Clock: helper.NewClock()}
}

var validateSurat = validator.New()

// ===================== LIST =====================
// GET /api/surat?page&limit&search&status&jenisSurat
func (h *SuratController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	search := strings.TrimSpace(c.Query("search"))
	status := strings.TrimSpace(c.Query("status"))
	jenisSurat := strings.TrimSpace(c.Query("jenisSurat"))

	tx := h.DB.Model(&model.SuratModel{}).
		Joins("LEFT JOIN penduduk ON penduduk.id = surat.penduduk_id")
	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where("surat.nomor_surat LIKE ? OR surat.perihal LIKE ? OR penduduk.nama LIKE ?", like, like, like)
	}
	if status != "" {
		tx = tx.Where("surat.status = ?", status)
	}
	if jenisSurat != "" {
		tx = tx.Where("surat.jenis_surat = ?", jenisSurat)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count surat: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data surat")
	}

	var rows []model.SuratModel
	if err := tx.
		Preload("Penduduk").
		Preload("CreatedBy").
		Order("surat.created_at DESC").
		Offset(p.Offset).
		Limit(p.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list surat: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data surat")
	}

	items := make([]dto.SuratItem, 0, len(rows))
	for _, m := range rows {
		items = append(items, dto.NewSuratItem(m))
	}

	// statistik status dihitung atas seluruh tabel
	var totalAll, pending, proses, selesai int64
	if err := h.DB.Model(&model.SuratModel{}).Count(&totalAll).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data surat")
	}
	byStatus := map[string]*int64{
		constants.StatusSuratPending: &pending,
		constants.StatusSuratProses:  &proses,
		constants.StatusSuratSelesai: &selesai,
	}
	for s, dst := range byStatus {
		if err := h.DB.Model(&model.SuratModel{}).Where("status = ?", s).Count(dst).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data surat")
		}
	}

	return c.JSON(fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p.Page, p.Limit),
		"stats": fiber.Map{
			"total":   totalAll,
			"pending": pending,
			"proses":  proses,
			"selesai": selesai,
		},
	})
}

// ===================== DETAIL =====================
// GET /api/surat/:id
func (h *SuratController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.SuratModel
	if err := h.DB.
		Preload("Penduduk").
		Preload("CreatedBy").
		First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Surat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data surat")
	}

	return helper.JsonData(c, dto.NewSuratItem(row))
}

// ===================== CREATE =====================
// POST /api/surat
func (h *SuratController) Create(c *fiber.Ctx) error {
	var req dto.CreateSuratRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validateSurat.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	dataJSON, err := dto.ValidateDataJSON(req.JenisSurat, req.DataJSON)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var penduduk pendudukModel.PendudukModel
	if err := h.DB.First(&penduduk, req.PendudukID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penduduk tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat surat")
	}

	createdByID := uint(1)
	if req.CreatedByID != nil {
		createdByID = *req.CreatedByID
	}

	now := h.Clock.Now()
	row := &model.SuratModel{
		JenisSurat:  req.JenisSurat,
		Kategori:    req.Kategori,
		Perihal:     strings.TrimSpace(req.Perihal),
		Status:      constants.StatusSuratPending,
		Keterangan:  req.Keterangan,
		DataJSON:    dataJSON,
		PendudukID:  penduduk.ID,
		CreatedByID: createdByID,
	}

	// penomoran + insert + log berada dalam satu transaksi;
	// unique index nomor_surat menolak duplikat saat dua request balapan
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		nomor, err := service.GenerateNomorSurat(tx, now, req.JenisSurat)
		if err != nil {
			return err
		}
		row.NomorSurat = nomor
		if err := tx.Create(row).Error; err != nil {
			return err
		}
		return activityService.Record(tx, constants.ActionCreate,
			row.Perihal+" - "+penduduk.Nama, constants.EntitySurat, row.ID, req.CreatedByID)
	}); err != nil {
		log.Printf("[ERROR] create surat: %v", err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Nomor surat bentrok, silakan ulangi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat surat")
	}

	row.Penduduk = &penduduk
	return helper.JsonCreated(c, dto.NewSuratItem(*row))
}

// ===================== UPDATE (partial) =====================
// PUT /api/surat/:id
func (h *SuratController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSuratRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validateSurat.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row model.SuratModel
	if err := h.DB.Preload("Penduduk").First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Surat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui surat")
	}

	if req.Status != nil {
		row.Status = *req.Status
	}
	if req.Keterangan != nil {
		row.Keterangan = req.Keterangan
	}
	if req.DataJSON != nil {
		dataJSON, err := dto.ValidateDataJSON(row.JenisSurat, req.DataJSON)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		row.DataJSON = dataJSON
	}

	pendudukNama := ""
	if row.Penduduk != nil {
		pendudukNama = row.Penduduk.Nama
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		return activityService.Record(tx, constants.ActionUpdate,
			fmt.Sprintf("Status surat diperbarui - %s (%s)", pendudukNama, row.Status),
			constants.EntitySurat, row.ID, nil)
	}); err != nil {
		log.Printf("[ERROR] update surat: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui surat")
	}

	return helper.JsonData(c, dto.NewSuratItem(row))
}

// ===================== DELETE =====================
// DELETE /api/surat/:id
func (h *SuratController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.SuratModel
	if err := h.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Surat tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus surat")
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.SuratModel{}, row.ID).Error; err != nil {
			return err
		}
		return activityService.Record(tx, constants.ActionDelete,
			"Surat dihapus - "+row.NomorSurat, constants.EntitySurat, row.ID, nil)
	}); err != nil {
		log.Printf("[ERROR] delete surat: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus surat")
	}

	return helper.JsonMessage(c, "Surat berhasil dihapus")
}
