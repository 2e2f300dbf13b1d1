package auth

import (
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/constants"
	helper "hadirku_backend/internals/helpers"
)

// RequireRole memastikan role sesi cocok dengan role yang diizinkan.
// Dipasang setelah AuthMiddleware.
func RequireRole(customForbiddenMessage string, allowed ...constants.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleStr, ok := c.Locals(helper.LocSessionRole).(string)
		if !ok {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		role, ok := constants.ParseRole(roleStr)
		if !ok {
			return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized: unknown role")
		}

		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.Error(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyAdmin / OnlyUser shortcut biar pemakaian di route lebih bersih.
func OnlyAdmin(feature string) fiber.Handler {
	return RequireRole(constants.RoleErrorAdmin(feature), constants.RoleAdmin)
}

func OnlyUser(feature string) fiber.Handler {
	return RequireRole(constants.RoleErrorUser(feature), constants.RoleUser)
}
