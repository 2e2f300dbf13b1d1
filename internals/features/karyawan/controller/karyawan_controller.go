package controller

import (
	"github.com/gofiber/fiber/v2"

	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/hrapi"
)

// KaryawanController meneruskan layar data karyawan ke backend HR. Filter
// list ({email} atau {status}) ikut diteruskan apa adanya.
type KaryawanController struct {
	API hrapi.Doer
}

func NewKaryawanController(api hrapi.Doer) *KaryawanController {
	return &KaryawanController{API: api}
}

func (kc *KaryawanController) List(c *fiber.Ctx) error {
	return hrapi.Proxy(c, kc.API, "POST", "/api/karyawan")
}

func (kc *KaryawanController) Create(c *fiber.Ctx) error {
	return hrapi.Proxy(c, kc.API, "POST", "/api/karyawan/created")
}

func (kc *KaryawanController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID karyawan tidak valid")
	}
	return hrapi.Proxy(c, kc.API, "PUT", "/api/karyawan/"+c.Params("id"))
}

func (kc *KaryawanController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID karyawan tidak valid")
	}
	return hrapi.Proxy(c, kc.API, "DELETE", "/api/karyawan/"+c.Params("id"))
}

// Jabatan: daftar posisi untuk form karyawan.
func (kc *KaryawanController) Jabatan(c *fiber.Ctx) error {
	return hrapi.Proxy(c, kc.API, "GET", "/api/jabatan")
}

// DataKantor: koordinat kantor untuk peta dashboard admin.
func (kc *KaryawanController) DataKantor(c *fiber.Ctx) error {
	return hrapi.Proxy(c, kc.API, "POST", "/api/datakantor/get")
}
