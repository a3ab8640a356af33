// internals/features/users/auth/route/auth_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/users/auth/controller"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/middlewares"
)

// AuthRoutes mendaftarkan endpoint autentikasi.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	grp := r.Group("/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Get("/me", middlewares.AuthMiddleware(), ctrl.Me)
}
