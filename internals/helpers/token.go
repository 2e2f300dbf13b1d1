package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals key yang diisi middleware auth setelah verifikasi sesi.
const (
	LocRawToken     = "raw_token"
	LocSessionSub   = "session_sub"
	LocSessionEmail = "session_email"
	LocSessionRole  = "session_role"
	LocSessionExp   = "session_exp"
	LocBackendToken = "backend_token"
)

// GetRawAccessToken mengembalikan access token sesi dari:
// 1) cookie "access_token"
// 2) Locals("raw_token") yang diset middleware
// 3) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// SetRawAccessToken menyimpan raw token ke Locals dari middleware auth.
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// BackendToken mengambil bearer token backend HR milik sesi aktif. Setiap
// call keluar ke backend memakai helper ini; absennya identitas berarti
// klien harus redirect ke sign-in.
func BackendToken(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals(LocBackendToken).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", &UnauthenticatedError{Message: "Sesi tidak ditemukan, silakan login ulang"}
	}
	return v, nil
}

// SessionEmail mengambil email identitas sesi aktif.
func SessionEmail(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals(LocSessionEmail).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", &UnauthenticatedError{Message: "Sesi tidak ditemukan, silakan login ulang"}
	}
	return v, nil
}
