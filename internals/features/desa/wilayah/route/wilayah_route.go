package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wilayahCtl "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/wilayah/controller"
)

// Rute wilayah administratif (dusun, RW, RT). 'r' diharapkan group /api.
func WilayahRoutes(r fiber.Router, db *gorm.DB) {
	ctl := wilayahCtl.NewWilayahController(db)

	grp := r.Group("/wilayah")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:type/:id", ctl.Update)
	grp.Delete("/:type/:id", ctl.Delete)
}
