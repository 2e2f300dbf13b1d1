package constants

import "fmt"

// Role adalah varian tertutup. Backend HR hanya mengenal dua role,
// jadi semua percabangan role wajib exhaustive terhadap dua nilai ini.
type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleUser
)

const (
	roleAdminStr = "admin"
	roleUserStr  = "user"
)

// ParseRole menerjemahkan string role dari backend/klaim JWT.
func ParseRole(s string) (Role, bool) {
	switch s {
	case roleAdminStr:
		return RoleAdmin, true
	case roleUserStr:
		return RoleUser, true
	default:
		return RoleUnknown, false
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return roleAdminStr
	case RoleUser:
		return roleUserStr
	default:
		return ""
	}
}

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyUsersCanAccess  = "Hanya karyawan yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorUser(feature string) string {
	return fmt.Sprintf(ErrOnlyUsersCanAccess, feature)
}
