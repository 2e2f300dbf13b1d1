package route

import (
	"github.com/gofiber/fiber/v2"

	karyawanController "hadirku_backend/internals/features/karyawan/controller"
	"hadirku_backend/internals/helpers/hrapi"
)

// KaryawanAdminRoutes: kelola data karyawan, jabatan, dan data kantor.
func KaryawanAdminRoutes(grp fiber.Router, api hrapi.Doer) {
	ctrl := karyawanController.NewKaryawanController(api)

	karyawan := grp.Group("/karyawan")
	karyawan.Post("/", ctrl.List)
	karyawan.Post("/created", ctrl.Create)
	karyawan.Put("/:id", ctrl.Update)
	karyawan.Delete("/:id", ctrl.Delete)

	grp.Get("/jabatan", ctrl.Jabatan)
	grp.Post("/datakantor", ctrl.DataKantor)
}

// KaryawanUserRoutes: karyawan hanya butuh daftar (dropdown form absensi).
func KaryawanUserRoutes(grp fiber.Router, api hrapi.Doer) {
	ctrl := karyawanController.NewKaryawanController(api)
	grp.Post("/karyawan", ctrl.List)
}
