// internals/features/desa/profil/controller/profil_desa_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/constants"
	activityService "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/activity/service"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/dto"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/model"
	helper "github.com/syrlramadhan/desa-tirongan-atas/internals/helpers"
)

type ProfilDesaController struct {
	DB *gorm.DB
}

func NewProfilDesaController(db *gorm.DB) *ProfilDesaController {
	return &ProfilDesaController{DB: db}
}

var validateProfilDesa = validator.New()

// ===================== GET =====================
// GET /api/profil-desa
func (h *ProfilDesaController) Get(c *fiber.Ctx) error {
	var row model.ProfilDesaModel
	if err := h.DB.Order("id ASC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil desa tidak ditemukan")
		}
		log.Printf("[ERROR] get profil desa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil desa")
	}
	return helper.JsonData(c, row)
}

// ===================== UPSERT =====================
// PUT /api/profil-desa
//
// Profil desa adalah baris tunggal: kalau belum ada dibuat, kalau sudah
// ada diperbarui penuh. Keduanya lewat jalur yang sama.
func (h *ProfilDesaController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertProfilDesaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validateProfilDesa.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row model.ProfilDesaModel
	var created bool
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Order("id ASC").First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
		case err != nil:
			return err
		}

		req.ApplyToModel(&row)
		if err := tx.Save(&row).Error; err != nil {
			return err
		}

		action := constants.ActionUpdate
		if created {
			action = constants.ActionCreate
		}
		return activityService.Record(tx, action,
			"Profil desa diperbarui - "+row.NamaDesa, constants.EntityProfilDesa, row.ID, nil)
	}); err != nil {
		log.Printf("[ERROR] upsert profil desa: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil desa")
	}

	if created {
		return helper.JsonCreated(c, row)
	}
	return helper.JsonData(c, row)
}
