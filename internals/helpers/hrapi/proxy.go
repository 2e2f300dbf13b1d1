package hrapi

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	helper "hadirku_backend/internals/helpers"
)

// Proxy meneruskan satu request apa adanya ke backend HR dengan bearer token
// sesi aktif, lalu menulis balik respons backend tanpa diubah. Dipakai layar
// CRUD yang memang hanya tabel+form di atas backend.
func Proxy(c *fiber.Ctx, api Doer, method, path string) error {
	bearer, err := helper.BackendToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var body any
	if raw := c.Body(); len(raw) > 0 {
		body = json.RawMessage(raw)
	}

	var out json.RawMessage
	if err := api.DoJSON(c.UserContext(), method, path, bearer, body, &out); err != nil {
		return helper.FromError(c, err)
	}

	if len(out) == 0 {
		return helper.Success(c, "OK", nil)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(out)
}
