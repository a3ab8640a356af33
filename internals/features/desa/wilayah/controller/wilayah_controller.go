// internals/features/desa/wilayah/controller/wilayah_controller.go
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
	keluargaModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/keluarga/model"
	pendudukModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/model"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/wilayah/dto"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/wilayah/model"
	helper "github.com/syrlramadhan/desa-tirongan-atas/internals/helpers"
)

type WilayahController struct {
	DB *gorm.DB
}

func NewWilayahController(db *gorm.DB) *WilayahController {
	return &WilayahController{DB: db}
}

var validateWilayah = validator.New()

// ===================== LIST (nested) =====================
// GET /api/wilayah
func (h *WilayahController) List(c *fiber.Ctx) error {
	var dusunList []model.DusunModel
	if err := h.DB.
		Preload("RWs", func(db *gorm.DB) *gorm.DB { return db.Order("nomor ASC") }).
		Preload("RWs.RTs", func(db *gorm.DB) *gorm.DB { return db.Order("nomor ASC") }).
		Order("nama ASC").
		Find(&dusunList).Error; err != nil {
		log.Printf("[ERROR] list wilayah: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data wilayah")
	}

	var totalKeluarga, totalPenduduk int64
	if err := h.DB.Model(&keluargaModel.KeluargaModel{}).Count(&totalKeluarga).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data wilayah")
	}
	if err := h.DB.Model(&pendudukModel.PendudukModel{}).Count(&totalPenduduk).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data wilayah")
	}

	stats := dto.WilayahStats{
		TotalDusun:    len(dusunList),
		TotalKeluarga: totalKeluarga,
		TotalPenduduk: totalPenduduk,
	}
	for _, d := range dusunList {
		stats.TotalRW += len(d.RWs)
		for _, rw := range d.RWs {
			stats.TotalRT += len(rw.RTs)
		}
	}

	return c.JSON(fiber.Map{
		"dusun": dusunList,
		"stats": stats,
	})
}

// ===================== CREATE =====================
// POST /api/wilayah dengan body {type: dusun|rw|rt, ...}
func (h *WilayahController) Create(c *fiber.Ctx) error {
	var req dto.CreateWilayahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validateWilayah.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	switch req.Type {
	case "dusun":
		row := &model.DusunModel{Nama: strings.TrimSpace(req.Nama), Kode: req.Kode}
		if err := h.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			return activityService.Record(tx, constants.ActionCreate,
				"Dusun baru ditambahkan - "+row.Nama, constants.EntityDusun, row.ID, nil)
		}); err != nil {
			log.Printf("[ERROR] create dusun: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan data wilayah")
		}
		return helper.JsonCreated(c, row)

	case "rw":
		if req.DusunID == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "dusunId wajib untuk RW")
		}
		row := &model.RWModel{
			Nama:    strings.TrimSpace(req.Nama),
			Nomor:   strings.TrimSpace(req.Nomor),
			Ketua:   req.Ketua,
			DusunID: *req.DusunID,
		}
		if err := h.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			return activityService.Record(tx, constants.ActionCreate,
				"RW baru ditambahkan - "+row.Nama, constants.EntityRW, row.ID, nil)
		}); err != nil {
			log.Printf("[ERROR] create rw: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan data wilayah")
		}
		return helper.JsonCreated(c, row)

	case "rt":
		if req.RWID == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "rwId wajib untuk RT")
		}
		row := &model.RTModel{
			Nama:  strings.TrimSpace(req.Nama),
			Nomor: strings.TrimSpace(req.Nomor),
			Ketua: req.Ketua,
			RWID:  *req.RWID,
		}
		if err := h.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(row).Error; err != nil {
				return err
			}
			return activityService.Record(tx, constants.ActionCreate,
				"RT baru ditambahkan - "+row.Nama, constants.EntityRT, row.ID, nil)
		}); err != nil {
			log.Printf("[ERROR] create rt: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambahkan data wilayah")
		}
		return helper.JsonCreated(c, row)
	}

	return helper.JsonError(c, fiber.StatusBadRequest, "Tipe wilayah tidak valid")
}

// ===================== UPDATE =====================
// PUT /api/wilayah/:type/:id
func (h *WilayahController) Update(c *fiber.Ctx) error {
	wilayahType := c.Params("type")
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateWilayahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validateWilayah.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	switch wilayahType {
	case "dusun":
		var row model.DusunModel
		if err := h.DB.First(&row, id).Error; err != nil {
			return h.wilayahLookupError(c, err, "Dusun")
		}
		if req.Nama != nil {
			row.Nama = strings.TrimSpace(*req.Nama)
		}
		if req.Kode != nil {
			row.Kode = req.Kode
		}
		if err := h.saveWithLog(&row, row.ID, "Dusun diperbarui - "+row.Nama, constants.EntityDusun); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data wilayah")
		}
		return helper.JsonData(c, row)

	case "rw":
		var row model.RWModel
		if err := h.DB.First(&row, id).Error; err != nil {
			return h.wilayahLookupError(c, err, "RW")
		}
		applyUnit(&row.Nama, &row.Nomor, &row.Ketua, req)
		if err := h.saveWithLog(&row, row.ID, "RW diperbarui - "+row.Nama, constants.EntityRW); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data wilayah")
		}
		return helper.JsonData(c, row)

	case "rt":
		var row model.RTModel
		if err := h.DB.First(&row, id).Error; err != nil {
			return h.wilayahLookupError(c, err, "RT")
		}
		applyUnit(&row.Nama, &row.Nomor, &row.Ketua, req)
		if err := h.saveWithLog(&row, row.ID, "RT diperbarui - "+row.Nama, constants.EntityRT); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data wilayah")
		}
		return helper.JsonData(c, row)
	}

	return helper.JsonError(c, fiber.StatusBadRequest, "Tipe wilayah tidak valid")
}

// ===================== DELETE =====================
// DELETE /api/wilayah/:type/:id
func (h *WilayahController) Delete(c *fiber.Ctx) error {
	wilayahType := c.Params("type")
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	switch wilayahType {
	case "dusun":
		var row model.DusunModel
		if err := h.DB.First(&row, id).Error; err != nil {
			return h.wilayahLookupError(c, err, "Dusun")
		}
		if err := h.DB.Transaction(func(tx *gorm.DB) error {
			// lepaskan keluarga yang masih menunjuk dusun ini
			if err := tx.Model(&keluargaModel.KeluargaModel{}).
				Where("dusun_id = ?", row.ID).
				Update("dusun_id", nil).Error; err != nil {
				return err
			}
			// hapus anak secara eksplisit: RT dulu, lalu RW
			var rwIDs []uint
			if err := tx.Model(&model.RWModel{}).Where("dusun_id = ?", row.ID).Pluck("id", &rwIDs).Error; err != nil {
				return err
			}
			if len(rwIDs) > 0 {
				if err := tx.Where("rw_id IN ?", rwIDs).Delete(&model.RTModel{}).Error; err != nil {
					return err
				}
				if err := tx.Where("dusun_id = ?", row.ID).Delete(&model.RWModel{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Delete(&model.DusunModel{}, row.ID).Error; err != nil {
				return err
			}
			return activityService.Record(tx, constants.ActionDelete,
				"Dusun dihapus - "+row.Nama, constants.EntityDusun, row.ID, nil)
		}); err != nil {
			log.Printf("[ERROR] delete dusun: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data wilayah")
		}
		return helper.JsonMessage(c, "Dusun berhasil dihapus")

	case "rw":
		var row model.RWModel
		if err := h.DB.First(&row, id).Error; err != nil {
			return h.wilayahLookupError(c, err, "RW")
		}
		if err := h.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("rw_id = ?", row.ID).Delete(&model.RTModel{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.RWModel{}, row.ID).Error; err != nil {
				return err
			}
			return activityService.Record(tx, constants.ActionDelete,
				"RW dihapus - "+row.Nama, constants.EntityRW, row.ID, nil)
		}); err != nil {
			log.Printf("[ERROR] delete rw: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data wilayah")
		}
		return helper.JsonMessage(c, "RW berhasil dihapus")

	case "rt":
		var row model.RTModel
		if err := h.DB.First(&row, id).Error; err != nil {
			return h.wilayahLookupError(c, err, "RT")
		}
		if err := h.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Delete(&model.RTModel{}, row.ID).Error; err != nil {
				return err
			}
			return activityService.Record(tx, constants.ActionDelete,
				"RT dihapus - "+row.Nama, constants.EntityRT, row.ID, nil)
		}); err != nil {
			log.Printf("[ERROR] delete rt: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus data wilayah")
		}
		return helper.JsonMessage(c, "RT berhasil dihapus")
	}

	return helper.JsonError(c, fiber.StatusBadRequest, "Tipe wilayah tidak valid")
}

/* ===================== internal ===================== */

func (h *WilayahController) wilayahLookupError(c *fiber.Ctx, err error, label string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, label+" tidak ditemukan")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data wilayah")
}

func (h *WilayahController) saveWithLog(row interface{}, id uint, description, entityType string) error {
	return h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(row).Error; err != nil {
			return err
		}
		return activityService.Record(tx, constants.ActionUpdate, description, entityType, id, nil)
	})
}

func applyUnit(nama, nomor *string, ketua **string, req dto.UpdateWilayahRequest) {
	if req.Nama != nil {
		*nama = strings.TrimSpace(*req.Nama)
	}
	if req.Nomor != nil {
		*nomor = strings.TrimSpace(*req.Nomor)
	}
	if req.Ketua != nil {
		*ketua = req.Ketua
	}
}
