package controller

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hadirku_backend/internals/features/auth/dto"
	"hadirku_backend/internals/features/auth/service"
	helper "hadirku_backend/internals/helpers"
)

type AuthController struct {
	DB      *gorm.DB
	Service *service.AuthService
}

func NewAuthController(db *gorm.DB, svc *service.AuthService) *AuthController {
	return &AuthController{DB: db, Service: svc}
}

// Login menukar kredensial menjadi sesi 24 jam. Token sesi dikirim balik di
// body dan juga diset sebagai cookie access_token.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidatorError(c, err)
	}

	res, err := ac.Service.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return helper.FromError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    res.AccessToken,
		Expires:  time.Unix(res.ExpiresAt, 0),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.Success(c, "Login berhasil", res)
}

// Register meneruskan form pendaftaran ke backend HR tanpa diubah. Publik,
// di belakang rate limiter yang sama dengan login.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	out, err := ac.Service.Register(c.UserContext(), json.RawMessage(c.Body()))
	if err != nil {
		return helper.FromError(c, err)
	}

	if len(out) == 0 {
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", nil)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusCreated).Send(out)
}

// Me mengembalikan identitas sesi aktif (sudah diverifikasi middleware).
func (ac *AuthController) Me(c *fiber.Ctx) error {
	sub, _ := c.Locals(helper.LocSessionSub).(string)
	email, err := helper.SessionEmail(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	role, _ := c.Locals(helper.LocSessionRole).(string)
	exp, _ := c.Locals(helper.LocSessionExp).(int64)

	return helper.Success(c, "OK", dto.MeResponse{
		Subject:   sub,
		Email:     email,
		Role:      role,
		ExpiresAt: exp,
	})
}

// Logout mencabut sesi aktif lewat revocation list dan menghapus cookie.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if err := ac.Service.Revoke(ac.DB, raw); err != nil {
		return helper.FromError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.Success(c, "Logout berhasil", nil)
}
