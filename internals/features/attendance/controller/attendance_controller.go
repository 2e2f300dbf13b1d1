package controller

import (
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/attendance/dto"
	"hadirku_backend/internals/features/attendance/service"
	helper "hadirku_backend/internals/helpers"
)

type AttendanceController struct {
	Service *service.AttendanceService
}

func NewAttendanceController(svc *service.AttendanceService) *AttendanceController {
	return &AttendanceController{Service: svc}
}

// ClockIn menerima form multipart aksi "masuk". Karyawan hanya bisa absen
// atas nama dirinya sendiri: email diambil dari sesi, bukan dari form.
func (ac *AttendanceController) ClockIn(c *fiber.Ctx) error {
	email, err := helper.SessionEmail(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	return ac.clockIn(c, email)
}

// ClockInFor versi admin: email_karyawan diambil dari form.
func (ac *AttendanceController) ClockInFor(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email_karyawan"))
	return ac.clockIn(c, email)
}

func (ac *AttendanceController) clockIn(c *fiber.Ctx, email string) error {
	bearer, err := helper.BackendToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	foto, err := readEvidenceFile(c, "foto")
	if err != nil {
		return helper.FromError(c, err)
	}

	in := dto.ClockInInput{
		EmailKaryawan: email,
		Tanggal:       strings.TrimSpace(c.FormValue("tanggal")),
		JamMasuk:      strings.TrimSpace(c.FormValue("jam_masuk")),
		Foto:          foto,
		Location:      parseCoordinates(c, "latitude", "longitude"),
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidatorError(c, err)
	}

	res, err := ac.Service.ClockIn(c.UserContext(), bearer, in)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Absensi masuk berhasil dicatat", res)
}

// ClockOut menutup record lewat aksi "pulang".
func (ac *AttendanceController) ClockOut(c *fiber.Ctx) error {
	bearer, err := helper.BackendToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	recordID, err := c.ParamsInt("id")
	if err != nil || recordID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "ID record tidak valid")
	}

	foto, err := readEvidenceFile(c, "foto")
	if err != nil {
		return helper.FromError(c, err)
	}

	in := dto.ClockOutInput{
		JamPulang: strings.TrimSpace(c.FormValue("jam_pulang")),
		Foto:      foto,
		Location:  parseCoordinates(c, "latitude", "longitude"),
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.ValidatorError(c, err)
	}

	res, err := ac.Service.ClockOut(c.UserContext(), bearer, recordID, in)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "Absensi pulang berhasil dicatat", res)
}

// List mengembalikan record milik karyawan sesi, opsional difilter per bulan
// (?bulan=1..12).
func (ac *AttendanceController) List(c *fiber.Ctx) error {
	bearer, err := helper.BackendToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	email, err := helper.SessionEmail(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	month := c.QueryInt("bulan", 0)
	entries, err := ac.Service.ListForEmployee(c.UserContext(), bearer, email, month)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "OK", entries)
}

// ListAll versi admin: seluruh karyawan, filter bulan opsional.
func (ac *AttendanceController) ListAll(c *fiber.Ctx) error {
	bearer, err := helper.BackendToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	month := c.QueryInt("bulan", 0)
	entries, err := ac.Service.ListAll(c.UserContext(), bearer, month)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.Success(c, "OK", entries)
}

// readEvidenceFile membaca file bukti dari form multipart. Tidak adanya file
// bukan error di sini; service yang memutuskan apakah foto wajib.
func readEvidenceFile(c *fiber.Ctx, field string) ([]byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return readAll(fh)
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, helper.NewValidationError("foto", "Gagal membuka file foto")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, helper.NewValidationError("foto", "Gagal membaca file foto")
	}
	return data, nil
}

// parseCoordinates membaca koordinat dari form; absen atau tidak valid
// berarti lokasi tidak diketahui (nil), bukan (0,0).
func parseCoordinates(c *fiber.Ctx, latField, lngField string) *dto.Coordinates {
	latStr := strings.TrimSpace(c.FormValue(latField))
	lngStr := strings.TrimSpace(c.FormValue(lngField))
	if latStr == "" || lngStr == "" {
		return nil
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		return nil
	}
	return &dto.Coordinates{Latitude: lat, Longitude: lng}
}
