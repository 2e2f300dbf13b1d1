// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hadirku_backend/internals/configs"
	attendanceRoute "hadirku_backend/internals/features/attendance/route"
	authRoute "hadirku_backend/internals/features/auth/route"
	cutiRoute "hadirku_backend/internals/features/cuti/route"
	dashboardController "hadirku_backend/internals/features/dashboard/controller"
	karyawanRoute "hadirku_backend/internals/features/karyawan/route"
	kinerjaRoute "hadirku_backend/internals/features/kinerja/route"
	taskRoute "hadirku_backend/internals/features/tasks/route"
	userdataRoute "hadirku_backend/internals/features/userdata/route"
	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/hrapi"
	authMiddleware "hadirku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := hrapi.NewClient(configs.HRAPIBaseURL)
	secret := configs.JWTSecret

	// ===================== SESSION =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, api, secret)

	// ===================== GUARDED PAGES =====================
	// Route guard jalan sebelum handler halaman mana pun: tidak ada konten
	// unauthorized yang sempat ter-render.
	guard := authMiddleware.RouteGuard(secret)
	dash := dashboardController.NewDashboardController()

	app.Get("/", guard, func(c *fiber.Ctx) error {
		// guard selalu memutus redirect untuk "/"; sampai sini berarti
		// role tidak dikenal
		return c.Redirect(authMiddleware.SignInPath, fiber.StatusFound)
	})
	app.Get(authMiddleware.SignInPath, func(c *fiber.Ctx) error {
		return helper.Success(c, "Silakan login", nil)
	})

	adminPages := app.Group("/admin", guard)
	adminPages.Get("/", dash.Home)

	userPages := app.Group("/user", guard)
	userPages.Get("/", dash.Home)

	// ===================== API GROUPS =====================
	log.Println("[INFO] Setting up USER group...")
	userGrp := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyUser("karyawan"),
	)

	log.Println("[INFO] Setting up ADMIN group...")
	adminGrp := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyAdmin("admin"),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Attendance routes...")
	attendanceRoute.AttendanceUserRoutes(userGrp, api, configs.NormalizePhoto)
	attendanceRoute.AttendanceAdminRoutes(adminGrp, api, configs.NormalizePhoto)

	log.Println("[INFO] Mounting Karyawan routes...")
	karyawanRoute.KaryawanUserRoutes(userGrp, api)
	karyawanRoute.KaryawanAdminRoutes(adminGrp, api)

	log.Println("[INFO] Mounting Cuti routes...")
	cutiRoute.CutiUserRoutes(userGrp, api)
	cutiRoute.CutiAdminRoutes(adminGrp, api)

	log.Println("[INFO] Mounting Task routes...")
	taskRoute.TaskUserRoutes(userGrp, api)
	taskRoute.TaskAdminRoutes(adminGrp, api)

	log.Println("[INFO] Mounting Kinerja routes...")
	kinerjaRoute.KinerjaUserRoutes(userGrp, api)
	kinerjaRoute.KinerjaAdminRoutes(adminGrp, api)

	log.Println("[INFO] Mounting UserData routes...")
	userdataRoute.UserDataUserRoutes(userGrp, api)
	userdataRoute.UserDataAdminRoutes(adminGrp, api)
}
