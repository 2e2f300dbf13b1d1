// internals/middlewares/auth/route_guard.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/constants"
	helper "hadirku_backend/internals/helpers"
)

// SignInPath adalah tujuan redirect saat tidak ada sesi.
const SignInPath = "/auth/login"

// Decision adalah hasil kebijakan route: lolos, atau redirect ke Location.
type Decision struct {
	Allow    bool
	Location string
}

func allow() Decision              { return Decision{Allow: true} }
func redirect(loc string) Decision { return Decision{Location: loc} }

// Decide adalah fungsi murni (path, role) -> keputusan. authenticated=false
// selalu berarti deny + redirect ke sign-in, tidak pernah fatal.
//
//	"/"        : admin -> /admin, user -> /user
//	"/admin/*" : selain admin -> "/"
//	"/user/*"  : selain user  -> "/"
func Decide(path string, role constants.Role, authenticated bool) Decision {
	if !authenticated {
		return redirect(SignInPath)
	}

	if path == "/" {
		switch role {
		case constants.RoleAdmin:
			return redirect("/admin")
		case constants.RoleUser:
			return redirect("/user")
		default:
			return redirect(SignInPath)
		}
	}

	if strings.HasPrefix(path, "/admin") && role != constants.RoleAdmin {
		return redirect("/")
	}
	if strings.HasPrefix(path, "/user") && role != constants.RoleUser {
		return redirect("/")
	}

	return allow()
}

// RouteGuard menjalankan Decide sebelum handler halaman apa pun, supaya tidak
// ada konten unauthorized yang sempat ter-render. Sesi invalid dianggap tidak
// ada sesi (bukan error).
func RouteGuard(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := constants.RoleUnknown
		authenticated := false

		if raw := helper.GetRawAccessToken(c); raw != "" {
			if ident, err := ParseSessionToken(raw, secret); err == nil {
				role = ident.Role
				authenticated = true
				c.Locals(helper.LocSessionSub, ident.Subject)
				c.Locals(helper.LocSessionEmail, ident.Email)
				c.Locals(helper.LocSessionRole, ident.Role.String())
				c.Locals(helper.LocSessionExp, ident.ExpiresAt.Unix())
				c.Locals(helper.LocBackendToken, ident.BackendToken)
			}
		}

		d := Decide(c.Path(), role, authenticated)
		if !d.Allow {
			return c.Redirect(d.Location, fiber.StatusFound)
		}
		return c.Next()
	}
}
