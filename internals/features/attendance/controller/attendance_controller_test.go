package controller

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hadirku_backend/internals/features/attendance/service"
	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/hrapi/mocks"
)

func sessionStub(c *fiber.Ctx) error {
	c.Locals(helper.LocSessionEmail, "budi@kantor.co.id")
	c.Locals(helper.LocBackendToken, "backend-bearer")
	return c.Next()
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestClockIn_MalformedDateFailsValidation(t *testing.T) {
	api := new(mocks.MockDoer)
	ctrl := NewAttendanceController(service.NewAttendanceService(api, false))

	app := fiber.New()
	app.Post("/masuk", sessionStub, ctrl.ClockIn)

	body, contentType := multipartForm(t, map[string]string{
		"tanggal":   "10-03-2025",
		"jam_masuk": "08:01",
	})
	req := httptest.NewRequest("POST", "/masuk", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Validasi gagal")
	assert.Contains(t, string(raw), "Tanggal")

	api.AssertNotCalled(t, "DoJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClockOut_MalformedTimeFailsValidation(t *testing.T) {
	api := new(mocks.MockDoer)
	ctrl := NewAttendanceController(service.NewAttendanceService(api, false))

	app := fiber.New()
	app.Post("/:id/pulang", sessionStub, ctrl.ClockOut)

	body, contentType := multipartForm(t, map[string]string{
		"jam_pulang": "17.00",
	})
	req := httptest.NewRequest("POST", "/7/pulang", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "Validasi gagal")
	assert.Contains(t, string(raw), "JamPulang")

	api.AssertNotCalled(t, "DoJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
