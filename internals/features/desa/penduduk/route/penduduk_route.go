package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pendudukCtl "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/controller"
)

// Rute master data penduduk. 'r' diharapkan group /api.
func PendudukRoutes(r fiber.Router, db *gorm.DB) {
	ctl := pendudukCtl.NewPendudukController(db)

	grp := r.Group("/penduduk")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
