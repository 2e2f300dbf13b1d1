package route

import (
	"github.com/gofiber/fiber/v2"

	taskController "hadirku_backend/internals/features/tasks/controller"
	"hadirku_backend/internals/helpers/hrapi"
)

// TaskAdminRoutes: kelola tugas seluruh karyawan.
func TaskAdminRoutes(grp fiber.Router, api hrapi.Doer) {
	ctrl := taskController.NewTaskController(api)

	tasks := grp.Group("/tasks")
	tasks.Post("/", ctrl.List)
	tasks.Post("/store", ctrl.Store)
	tasks.Put("/:id", ctrl.Update)
	tasks.Delete("/:id", ctrl.Delete)
}

// TaskUserRoutes: karyawan melihat dan memperbarui status tugasnya.
func TaskUserRoutes(grp fiber.Router, api hrapi.Doer) {
	ctrl := taskController.NewTaskController(api)

	tasks := grp.Group("/tasks")
	tasks.Post("/", ctrl.List)
	tasks.Put("/:id", ctrl.Update)
}
