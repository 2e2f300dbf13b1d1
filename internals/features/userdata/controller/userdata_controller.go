package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/hrapi"
)

// UserDataController meneruskan administrasi akun login dan profil ke
// backend HR.
type UserDataController struct {
	API hrapi.Doer
}

func NewUserDataController(api hrapi.Doer) *UserDataController {
	return &UserDataController{API: api}
}

func (uc *UserDataController) List(c *fiber.Ctx) error {
	return hrapi.Proxy(c, uc.API, "GET", "/api/user_data")
}

func (uc *UserDataController) Create(c *fiber.Ctx) error {
	return hrapi.Proxy(c, uc.API, "POST", "/api/user_data")
}

func (uc *UserDataController) Update(c *fiber.Ctx) error {
	if id, err := c.ParamsInt("id"); err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID user tidak valid")
	}
	return hrapi.Proxy(c, uc.API, "PUT", "/api/user_data/"+c.Params("id"))
}

func (uc *UserDataController) Delete(c *fiber.Ctx) error {
	if id, err := c.ParamsInt("id"); err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID user tidak valid")
	}
	return hrapi.Proxy(c, uc.API, "DELETE", "/api/user_data/"+c.Params("id"))
}

// Akun tanpa data karyawan, dipakai form relasi user-karyawan.
func (uc *UserDataController) Unlinked(c *fiber.Ctx) error {
	return hrapi.Proxy(c, uc.API, "GET", "/api/user/get")
}

// UpdateProfile: karyawan memperbarui profilnya sendiri.
func (uc *UserDataController) UpdateProfile(c *fiber.Ctx) error {
	return hrapi.Proxy(c, uc.API, "PUT", "/api/profile")
}
