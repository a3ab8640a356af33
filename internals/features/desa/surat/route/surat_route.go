package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	suratCtl "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/controller"
)

// Rute pelayanan surat. 'r' diharapkan group /api.
func SuratRoutes(r fiber.Router, db *gorm.DB) {
	ctl := suratCtl.NewSuratController(db)

	grp := r.Group("/surat")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
