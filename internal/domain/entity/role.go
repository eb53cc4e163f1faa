package entity

// Role constants
const (
	RoleAdmin     = "ADMIN"
	RoleFrontdesk = "FRONTDESK"
	RoleDentist   = "DENTIST"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleFrontdesk, RoleDentist:
		return true
	}
	return false
}
