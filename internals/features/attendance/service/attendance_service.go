package service

import (
	"context"
	"fmt"
	"time"

	"hadirku_backend/internals/features/attendance/dto"
	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/hrapi"
	"hadirku_backend/internals/helpers/photo"
)

const (
	listPath    = "/api/absensi"
	createPath  = "/api/absensi/created"
	pulangPathF = "/api/absensi/%d/pulang"
)

// Peringatan recoverable saat lokasi tidak tersedia; submit tetap jalan
// dengan koordinat sentinel nol.
const WarnNoLocation = "Lokasi tidak tersedia, absensi dikirim dengan koordinat kosong"

// AttendanceService mengelola siklus dua fase masuk/pulang beserta bukti
// foto dan koordinatnya. Semua kegagalan validasi bersifat lokal dan tidak
// pernah menyentuh network; kegagalan backend tidak pernah di-retry dan
// tidak meninggalkan state lokal.
type AttendanceService struct {
	API            hrapi.Doer
	NormalizePhoto bool
}

func NewAttendanceService(api hrapi.Doer, normalizePhoto bool) *AttendanceService {
	return &AttendanceService{API: api, NormalizePhoto: normalizePhoto}
}

// ClockIn membuka record absensi hari itu ("masuk"). Foto bukti wajib dan
// dicek terhadap batas 20 MiB sebelum encoding.
func (s *AttendanceService) ClockIn(ctx context.Context, bearer string, in dto.ClockInInput) (*dto.ClockResult, error) {
	if in.EmailKaryawan == "" || in.Tanggal == "" || in.JamMasuk == "" {
		return nil, helper.NewValidationError("form", "Semua field wajib diisi!")
	}
	if len(in.Foto) == 0 {
		return nil, helper.NewValidationError("foto_masuk", "Foto masuk wajib diupload!")
	}

	encoded, err := photo.EncodeEvidence("foto_masuk", in.Foto, s.NormalizePhoto)
	if err != nil {
		return nil, err
	}

	payload := dto.ClockInPayload{
		EmailKaryawan: in.EmailKaryawan,
		Tanggal:       in.Tanggal,
		JamMasuk:      in.JamMasuk,
		FotoMasuk:     encoded,
	}

	warning := ""
	if in.Location != nil {
		payload.LatitudeMasuk = in.Location.Latitude
		payload.LongitudeMasuk = in.Location.Longitude
	} else {
		warning = WarnNoLocation
	}

	var rec dto.AttendanceEntry
	if err := s.API.DoJSON(ctx, "POST", createPath, bearer, payload, &rec); err != nil {
		return nil, err
	}

	return &dto.ClockResult{Record: &rec, Warning: warning}, nil
}

// ClockOut menutup record yang sudah ada ("pulang"). Bukti segar wajib:
// tanpa jam atau foto pulang aksi ditolak, meskipun bukti masuk sudah ada.
func (s *AttendanceService) ClockOut(ctx context.Context, bearer string, recordID int, in dto.ClockOutInput) (*dto.ClockResult, error) {
	if recordID <= 0 {
		return nil, helper.NewValidationError("id", "Record absensi tidak ditemukan")
	}
	if in.JamPulang == "" {
		return nil, helper.NewValidationError("jam_pulang", "Jam pulang wajib diisi!")
	}
	if len(in.Foto) == 0 {
		return nil, helper.NewValidationError("foto_pulang", "Foto pulang wajib diupload!")
	}

	encoded, err := photo.EncodeEvidence("foto_pulang", in.Foto, s.NormalizePhoto)
	if err != nil {
		return nil, err
	}

	payload := dto.ClockOutPayload{
		JamPulang:  in.JamPulang,
		FotoPulang: encoded,
	}

	warning := ""
	if in.Location != nil {
		payload.LatitudePulang = in.Location.Latitude
		payload.LongitudePulang = in.Location.Longitude
	} else {
		warning = WarnNoLocation
	}

	var rec dto.AttendanceEntry
	path := fmt.Sprintf(pulangPathF, recordID)
	if err := s.API.DoJSON(ctx, "POST", path, bearer, payload, &rec); err != nil {
		return nil, err
	}

	return &dto.ClockResult{Record: &rec, Warning: warning}, nil
}

// ListForEmployee mengambil ulang seluruh record milik satu karyawan dari
// backend (tidak ada cache), lalu memfilter per bulan kalender di sisi
// klien bila month 1..12 diberikan.
func (s *AttendanceService) ListForEmployee(ctx context.Context, bearer, email string, month int) ([]dto.AttendanceEntry, error) {
	if email == "" {
		return nil, helper.NewValidationError("email", "Email karyawan wajib diisi!")
	}

	var entries []dto.AttendanceEntry
	if err := s.API.DoJSON(ctx, "POST", listPath, bearer, dto.ListFilter{Email: email}, &entries); err != nil {
		return nil, err
	}

	if month < 1 || month > 12 {
		return entries, nil
	}
	return FilterByMonth(entries, month), nil
}

// ListAll mengambil seluruh record tanpa filter email (layar admin).
func (s *AttendanceService) ListAll(ctx context.Context, bearer string, month int) ([]dto.AttendanceEntry, error) {
	var entries []dto.AttendanceEntry
	if err := s.API.DoJSON(ctx, "POST", listPath, bearer, dto.ListFilter{}, &entries); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return entries, nil
	}
	return FilterByMonth(entries, month), nil
}

// FilterByMonth menyaring entry yang tanggalnya jatuh di bulan kalender
// tersebut. Tanggal yang tidak bisa diparse dilewati.
func FilterByMonth(entries []dto.AttendanceEntry, month int) []dto.AttendanceEntry {
	out := make([]dto.AttendanceEntry, 0, len(entries))
	for _, e := range entries {
		t, err := time.Parse("2006-01-02", e.Tanggal)
		if err != nil {
			continue
		}
		if int(t.Month()) == month {
			out = append(out, e)
		}
	}
	return out
}
