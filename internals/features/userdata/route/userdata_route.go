package route

import (
	"github.com/gofiber/fiber/v2"

	userdataController "hadirku_backend/internals/features/userdata/controller"
	"hadirku_backend/internals/helpers/hrapi"
)

// UserDataAdminRoutes: administrasi akun login.
func UserDataAdminRoutes(grp fiber.Router, api hrapi.Doer) {
	ctrl := userdataController.NewUserDataController(api)

	users := grp.Group("/user_data")
	users.Get("/", ctrl.List)
	users.Post("/", ctrl.Create)
	users.Put("/:id", ctrl.Update)
	users.Delete("/:id", ctrl.Delete)

	grp.Get("/user/get", ctrl.Unlinked)
}

// UserDataUserRoutes: profil milik sendiri.
func UserDataUserRoutes(grp fiber.Router, api hrapi.Doer) {
	ctrl := userdataController.NewUserDataController(api)
	grp.Put("/profile", ctrl.UpdateProfile)
}
