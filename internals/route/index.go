// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/dashboard/route"
	keluargaRoute "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/keluarga/route"
	pendudukRoute "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/penduduk/route"
	profilRoute "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/profil/route"
	suratRoute "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/surat/route"
	wilayahRoute "github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/wilayah/route"
	authRoute "github.com/syrlramadhan/desa-tirongan-atas/internals/features/users/auth/route"
)

// SetupRoutes merangkai seluruh route aplikasi di bawah prefix /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
	pendudukRoute.PendudukRoutes(api, db)
	keluargaRoute.KeluargaRoutes(api, db)
	wilayahRoute.WilayahRoutes(api, db)
	suratRoute.SuratRoutes(api, db)
	profilRoute.ProfilDesaRoutes(api, db)
}
