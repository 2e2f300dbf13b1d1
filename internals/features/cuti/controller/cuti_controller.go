package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/hrapi"
)

// CutiController meneruskan permohonan izin/cuti ke backend HR. Persetujuan
// admin berjalan lewat Update (perubahan status pada record izin).
type CutiController struct {
	API hrapi.Doer
}

func NewCutiController(api hrapi.Doer) *CutiController {
	return &CutiController{API: api}
}

func (cc *CutiController) List(c *fiber.Ctx) error {
	return hrapi.Proxy(c, cc.API, "POST", "/api/izin")
}

// ListTahunan: rekap cuti tahunan untuk dashboard admin.
func (cc *CutiController) ListTahunan(c *fiber.Ctx) error {
	return hrapi.Proxy(c, cc.API, "POST", "/api/izin/tahunan")
}

func (cc *CutiController) Store(c *fiber.Ctx) error {
	return hrapi.Proxy(c, cc.API, "POST", "/api/izin/store")
}

func (cc *CutiController) Update(c *fiber.Ctx) error {
	if id, err := c.ParamsInt("id"); err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID izin tidak valid")
	}
	return hrapi.Proxy(c, cc.API, "PUT", "/api/izin/"+c.Params("id"))
}

func (cc *CutiController) Delete(c *fiber.Ctx) error {
	if id, err := c.ParamsInt("id"); err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID izin tidak valid")
	}
	return hrapi.Proxy(c, cc.API, "DELETE", "/api/izin/"+c.Params("id"))
}
