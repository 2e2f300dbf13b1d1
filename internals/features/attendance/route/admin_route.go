package route

import (
	"github.com/gofiber/fiber/v2"

	attendanceController "hadirku_backend/internals/features/attendance/controller"
	attendanceService "hadirku_backend/internals/features/attendance/service"
	"hadirku_backend/internals/helpers/hrapi"
)

// AttendanceAdminRoutes: admin melihat seluruh absensi dan bisa mencatat
// masuk/pulang atas nama karyawan.
func AttendanceAdminRoutes(grp fiber.Router, api hrapi.Doer, normalizePhoto bool) {
	ctrl := attendanceController.NewAttendanceController(
		attendanceService.NewAttendanceService(api, normalizePhoto),
	)

	absensi := grp.Group("/absensi")
	absensi.Get("/", ctrl.ListAll)
	absensi.Post("/masuk", ctrl.ClockInFor)
	absensi.Post("/:id/pulang", ctrl.ClockOut)
}
