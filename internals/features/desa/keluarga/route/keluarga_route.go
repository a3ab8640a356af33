package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	keluargaCtl "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/keluarga/controller"
)

// Rute master data keluarga (kartu keluarga). 'r' diharapkan group /api.
func KeluargaRoutes(r fiber.Router, db *gorm.DB) {
	ctl := keluargaCtl.NewKeluargaController(db)

	grp := r.Group("/keluarga")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
