// internals/features/users/auth/dto/auth_dto.go
package dto

import "github.com/syrlramadhan/desa-tirongan-atas/internals/features/users/user/model"

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserInfo struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func NewUserInfo(m model.UserModel) UserInfo {
	return UserInfo{ID: m.ID, Username: m.Username, Name: m.Name, Role: m.Role}
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
