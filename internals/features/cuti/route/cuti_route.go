package route

import (
	"github.com/gofiber/fiber/v2"

	cutiController "hadirku_backend/internals/features/cuti/controller"
	"hadirku_backend/internals/helpers/hrapi"
)

// CutiAdminRoutes: admin melihat semua permohonan dan memutus status.
func CutiAdminRoutes(grp fiber.Router, api hrapi.Doer) {
	ctrl := cutiController.NewCutiController(api)

	izin := grp.Group("/izin")
	izin.Post("/", ctrl.List)
	izin.Post("/tahunan", ctrl.ListTahunan)
	izin.Post("/store", ctrl.Store)
	izin.Put("/:id", ctrl.Update)
	izin.Delete("/:id", ctrl.Delete)
}

// CutiUserRoutes: karyawan mengajukan dan mengelola permohonannya sendiri
// (kepemilikan record ditegakkan backend).
func CutiUserRoutes(grp fiber.Router, api hrapi.Doer) {
	ctrl := cutiController.NewCutiController(api)

	izin := grp.Group("/izin")
	izin.Post("/", ctrl.List)
	izin.Post("/store", ctrl.Store)
	izin.Put("/:id", ctrl.Update)
	izin.Delete("/:id", ctrl.Delete)
}
