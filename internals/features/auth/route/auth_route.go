package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "hadirku_backend/internals/features/auth/controller"
	authService "hadirku_backend/internals/features/auth/service"
	"hadirku_backend/internals/helpers/hrapi"
	"hadirku_backend/internals/middlewares"
	authMiddleware "hadirku_backend/internals/middlewares/auth"
)

// AuthRoutes memasang endpoint sesi: login dan register (rate-limited),
// me, logout.
func AuthRoutes(app *fiber.App, db *gorm.DB, api hrapi.Doer, jwtSecret string) {
	svc := authService.NewAuthService(api, jwtSecret)
	ctrl := authController.NewAuthController(db, svc)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register)
	grp.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
	grp.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
