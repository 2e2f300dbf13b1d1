package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/hrapi"
)

// KinerjaController meneruskan record kinerja (input payroll) ke backend HR.
// Perhitungan gaji sepenuhnya urusan backend.
type KinerjaController struct {
	API hrapi.Doer
}

func NewKinerjaController(api hrapi.Doer) *KinerjaController {
	return &KinerjaController{API: api}
}

// Summary: agregat kinerja per karyawan untuk layar payroll.
func (kc *KinerjaController) Summary(c *fiber.Ctx) error {
	return hrapi.Proxy(c, kc.API, "GET", "/api/kinerja-summary")
}

func (kc *KinerjaController) Store(c *fiber.Ctx) error {
	return hrapi.Proxy(c, kc.API, "POST", "/api/kinerja-store")
}

func (kc *KinerjaController) Update(c *fiber.Ctx) error {
	if id, err := c.ParamsInt("id"); err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID kinerja tidak valid")
	}
	return hrapi.Proxy(c, kc.API, "PUT", "/api/kinerja-update/"+c.Params("id"))
}
