package constants

// Role user aplikasi
const (
	RoleAdmin      = "admin"
	RoleKepalaDesa = "kepala_desa"
	RoleOperator   = "operator"
)

var AllRoles = []string{
	RoleAdmin,
	RoleKepalaDesa,
	RoleOperator,
}
