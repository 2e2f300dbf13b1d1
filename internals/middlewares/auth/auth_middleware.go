// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"hadirku_backend/internals/configs"
	"hadirku_backend/internals/constants"
	authModel "hadirku_backend/internals/features/auth/model"
	helper "hadirku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi sesi bertanda tangan pada setiap request API:
// signature, expiry, dan revocation list. Klaim identitas disimpan ke Locals
// supaya controller tinggal membaca.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Token tidak ditemukan")
		}

		// Cek revocation list (sekali per request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token ditemukan di blacklist")
				return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - Token sudah dicabut")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] DB error saat cek blacklist:", err)
				return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		ident, err := ParseSessionToken(tokenString, configs.JWTSecret)
		if err != nil {
			log.Println("[ERROR] Sesi tidak valid:", err)
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - "+err.Error())
		}

		helper.SetRawAccessToken(c, tokenString)
		c.Locals(helper.LocSessionSub, ident.Subject)
		c.Locals(helper.LocSessionEmail, ident.Email)
		c.Locals(helper.LocSessionRole, ident.Role.String())
		c.Locals(helper.LocSessionExp, ident.ExpiresAt.Unix())
		c.Locals(helper.LocBackendToken, ident.BackendToken)

		return c.Next()
	}
}

// SessionIdentity adalah isi sesi yang sudah diverifikasi.
type SessionIdentity struct {
	Subject      string
	Email        string
	Role         constants.Role
	BackendToken string
	ExpiresAt    time.Time
}

// ParseSessionToken memverifikasi signature + expiry dan membongkar klaim
// {sub, email, role, token}. Identitas immutable selama umur sesi; tidak ada
// sliding renewal.
func ParseSessionToken(tokenString, secret string) (*SessionIdentity, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret belum diset")
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metode signing tidak dikenal")
		}
		return []byte(secret), nil
	}); err != nil {
		return nil, fmt.Errorf("token parse error")
	}

	if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
		return nil, err
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)
	backendToken, _ := claims["token"].(string)

	role, ok := constants.ParseRole(roleStr)
	if !ok {
		return nil, fmt.Errorf("role tidak dikenal")
	}
	if email == "" || backendToken == "" {
		return nil, fmt.Errorf("klaim sesi tidak lengkap")
	}

	exp := time.Time{}
	if v, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(v), 0)
	}

	return &SessionIdentity{
		Subject:      sub,
		Email:        email,
		Role:         role,
		BackendToken: backendToken,
		ExpiresAt:    exp,
	}, nil
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	v, ok := claims["exp"].(float64)
	if !ok {
		return fmt.Errorf("token tanpa expiry")
	}
	if time.Now().After(time.Unix(int64(v), 0).Add(leeway)) {
		return fmt.Errorf("token expired")
	}
	return nil
}
