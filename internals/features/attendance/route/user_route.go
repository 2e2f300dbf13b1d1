package route

import (
	"github.com/gofiber/fiber/v2"

	attendanceController "hadirku_backend/internals/features/attendance/controller"
	attendanceService "hadirku_backend/internals/features/attendance/service"
	"hadirku_backend/internals/helpers/hrapi"
)

// AttendanceUserRoutes: karyawan mengelola absensinya sendiri.
func AttendanceUserRoutes(grp fiber.Router, api hrapi.Doer, normalizePhoto bool) {
	ctrl := attendanceController.NewAttendanceController(
		attendanceService.NewAttendanceService(api, normalizePhoto),
	)

	absensi := grp.Group("/absensi")
	absensi.Get("/", ctrl.List)
	absensi.Post("/masuk", ctrl.ClockIn)
	absensi.Post("/:id/pulang", ctrl.ClockOut)
}
