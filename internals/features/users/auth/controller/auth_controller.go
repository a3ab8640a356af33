// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/users/auth/dto"
	authService "github.com/syrlramadhan/desa-tirongan-atas/internals/features/users/auth/service"
	"github.com/syrlramadhan/desa-tirongan-atas/internals/features/users/user/model"
	helper "github.com/syrlramadhan/desa-tirongan-atas/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

// ===================== LOGIN =====================
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	err := h.DB.Where("username = ?", strings.TrimSpace(req.Username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}
	if err != nil {
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := authService.GenerateToken(user, time.Now())
	if err != nil {
		log.Printf("[ERROR] login token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	return helper.JsonData(c, dto.LoginResponse{
		Token: token,
		User:  dto.NewUserInfo(user),
	})
}

// ===================== ME =====================
// GET /api/auth/me (di belakang AuthMiddleware)
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var user model.UserModel
	if err := h.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonData(c, dto.NewUserInfo(user))
}
