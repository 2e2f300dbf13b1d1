package route

import (
	"github.com/gofiber/fiber/v2"

	kinerjaController "hadirku_backend/internals/features/kinerja/controller"
	"hadirku_backend/internals/helpers/hrapi"
)

// KinerjaAdminRoutes: input dan rekap kinerja untuk payroll.
func KinerjaAdminRoutes(grp fiber.Router, api hrapi.Doer) {
	ctrl := kinerjaController.NewKinerjaController(api)

	grp.Get("/kinerja-summary", ctrl.Summary)
	grp.Post("/kinerja-store", ctrl.Store)
	grp.Put("/kinerja-update/:id", ctrl.Update)
}

// KinerjaUserRoutes: karyawan melihat rekap kinerjanya sendiri.
func KinerjaUserRoutes(grp fiber.Router, api hrapi.Doer) {
	ctrl := kinerjaController.NewKinerjaController(api)
	grp.Get("/kinerja-summary", ctrl.Summary)
}
