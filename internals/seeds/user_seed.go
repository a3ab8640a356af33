// internals/seeds/user_seed.go
package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/syrlramadhan/desa-tirongan-atas/internals/constants"
	userModel "github.com/syrlramadhan/desa-tirongan-atas/internals/features/users/user/model"
)

func strPtr(s string) *string { return &s }

// SeedUsers membuat akun bawaan. Idempoten: username yang sudah ada dilewati.
func SeedUsers(db *gorm.DB) error {
	type akun struct {
		Username string
		Password string
		Name     string
		Role     string
		Email    *string
	}

	akunList := []akun{
		{Username: "admin", Password: "admin123", Name: "Juni Prayitno S.IP", Role: constants.RoleAdmin, Email: strPtr("admin@tironganatas.desa.id")},
		{Username: "kepaladesa", Password: "kepaladesa123", Name: "Ahmad Sulaiman", Role: constants.RoleKepalaDesa},
		{Username: "operator", Password: "operator123", Name: "Siti Rahayu", Role: constants.RoleOperator},
	}

	for _, a := range akunList {
		var count int64
		if err := db.Model(&userModel.UserModel{}).
			Where("username = ?", a.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		row := userModel.UserModel{
			Username: a.Username,
			Password: string(hash),
			Name:     a.Name,
			Role:     a.Role,
			Email:    a.Email,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
		log.Printf("[SEED] user %s (%s) dibuat", a.Username, a.Role)
	}
	return nil
}
