// internals/features/desa/dashboard/route/dashboard_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/desa/dashboard/controller"
)

// DashboardRoutes mendaftarkan endpoint ringkasan dashboard.
func DashboardRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)

	r.Get("/dashboard", ctrl.Get)
}
