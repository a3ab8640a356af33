// internals/features/desa/profil/route/profil_desa_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/controller"
)

// ProfilDesaRoutes mendaftarkan endpoint profil desa (baris tunggal).
func ProfilDesaRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProfilDesaController(db)

	grp := r.Group("/profil-desa")
	grp.Get("/", ctrl.Get)
	grp.Put("/", ctrl.Upsert)
}
