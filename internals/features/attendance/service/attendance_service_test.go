package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hadirku_backend/internals/features/attendance/dto"
	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/hrapi/mocks"
)

var smallPhoto = []byte("bukan-gambar-sungguhan-tapi-cukup-untuk-payload")

func validClockIn() dto.ClockInInput {
	return dto.ClockInInput{
		EmailKaryawan: "budi@kantor.co.id",
		Tanggal:       "2025-03-10",
		JamMasuk:      "08:01",
		Foto:          smallPhoto,
		Location:      &dto.Coordinates{Latitude: -7.6369, Longitude: 111.5426},
	}
}

func TestClockIn_ValidationBlocksSubmission(t *testing.T) {
	api := new(mocks.MockDoer)
	svc := NewAttendanceService(api, false)

	cases := []struct {
		name    string
		mutate  func(*dto.ClockInInput)
		message string
	}{
		{"email kosong", func(in *dto.ClockInInput) { in.EmailKaryawan = "" }, "Semua field wajib diisi!"},
		{"tanggal kosong", func(in *dto.ClockInInput) { in.Tanggal = "" }, "Semua field wajib diisi!"},
		{"jam kosong", func(in *dto.ClockInInput) { in.JamMasuk = "" }, "Semua field wajib diisi!"},
		{"foto kosong", func(in *dto.ClockInInput) { in.Foto = nil }, "Foto masuk wajib diupload!"},
		{"foto 21MB", func(in *dto.ClockInInput) { in.Foto = make([]byte, 21*1024*1024) }, "Ukuran foto melebihi 20MB!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validClockIn()
			tc.mutate(&in)

			_, err := svc.ClockIn(context.Background(), "bearer", in)

			var valErr *helper.ValidationError
			assert.True(t, errors.As(err, &valErr))
			assert.Equal(t, tc.message, valErr.Message)
		})
	}

	// semua kegagalan validasi bersifat lokal: nol network call
	api.AssertNotCalled(t, "DoJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClockIn_SubmitsEncodedPhotoAndCoordinates(t *testing.T) {
	api := new(mocks.MockDoer)
	svc := NewAttendanceService(api, false)

	var sent dto.ClockInPayload
	api.On("DoJSON", mock.Anything, "POST", "/api/absensi/created", "bearer", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(4).(dto.ClockInPayload)
			out := args.Get(5).(*dto.AttendanceEntry)
			*out = dto.AttendanceEntry{
				ID:             41,
				EmailKaryawan:  sent.EmailKaryawan,
				Tanggal:        sent.Tanggal,
				JamMasuk:       sent.JamMasuk,
				FotoMasuk:      sent.FotoMasuk,
				LatitudeMasuk:  sent.LatitudeMasuk,
				LongitudeMasuk: sent.LongitudeMasuk,
				Status:         "Tepat Waktu",
			}
		}).
		Return(nil)

	res, err := svc.ClockIn(context.Background(), "bearer", validClockIn())
	assert.NoError(t, err)
	assert.Empty(t, res.Warning)
	assert.Equal(t, 41, res.Record.ID)
	assert.True(t, strings.HasPrefix(sent.FotoMasuk, "data:"))
	assert.Contains(t, sent.FotoMasuk, ";base64,")
	assert.InDelta(t, -7.6369, sent.LatitudeMasuk, 1e-9)

	api.AssertExpectations(t)
}

func TestClockIn_MissingLocationUsesSentinelWithWarning(t *testing.T) {
	api := new(mocks.MockDoer)
	svc := NewAttendanceService(api, false)

	var sent dto.ClockInPayload
	api.On("DoJSON", mock.Anything, "POST", "/api/absensi/created", "bearer", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(4).(dto.ClockInPayload)
		}).
		Return(nil)

	in := validClockIn()
	in.Location = nil

	res, err := svc.ClockIn(context.Background(), "bearer", in)
	assert.NoError(t, err)
	assert.Equal(t, WarnNoLocation, res.Warning)
	assert.Zero(t, sent.LatitudeMasuk)
	assert.Zero(t, sent.LongitudeMasuk)
}

func TestClockIn_BackendFailureIsSubmissionError(t *testing.T) {
	api := new(mocks.MockDoer)
	svc := NewAttendanceService(api, false)

	api.On("DoJSON", mock.Anything, "POST", "/api/absensi/created", "bearer", mock.Anything, mock.Anything).
		Return(&helper.SubmissionError{Status: 422, Message: "Absensi hari ini sudah ada"})

	_, err := svc.ClockIn(context.Background(), "bearer", validClockIn())

	var subErr *helper.SubmissionError
	assert.True(t, errors.As(err, &subErr))
	assert.Equal(t, "Absensi hari ini sudah ada", subErr.Message)
}

func TestClockOut_RequiresFreshEvidence(t *testing.T) {
	api := new(mocks.MockDoer)
	svc := NewAttendanceService(api, false)

	// foto pulang wajib meskipun bukti masuk sudah ada di record
	_, err := svc.ClockOut(context.Background(), "bearer", 41, dto.ClockOutInput{
		JamPulang: "17:02",
		Foto:      nil,
	})

	var valErr *helper.ValidationError
	assert.True(t, errors.As(err, &valErr))
	assert.Equal(t, "Foto pulang wajib diupload!", valErr.Message)

	_, err = svc.ClockOut(context.Background(), "bearer", 41, dto.ClockOutInput{
		JamPulang: "",
		Foto:      smallPhoto,
	})
	assert.True(t, errors.As(err, &valErr))

	api.AssertNotCalled(t, "DoJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClockInThenClockOut_RoundTrip(t *testing.T) {
	api := new(mocks.MockDoer)
	svc := NewAttendanceService(api, false)

	api.On("DoJSON", mock.Anything, "POST", "/api/absensi/created", "bearer", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent := args.Get(4).(dto.ClockInPayload)
			out := args.Get(5).(*dto.AttendanceEntry)
			*out = dto.AttendanceEntry{
				ID:             7,
				EmailKaryawan:  sent.EmailKaryawan,
				Tanggal:        sent.Tanggal,
				JamMasuk:       sent.JamMasuk,
				FotoMasuk:      sent.FotoMasuk,
				LatitudeMasuk:  sent.LatitudeMasuk,
				LongitudeMasuk: sent.LongitudeMasuk,
				Status:         "Tepat Waktu",
			}
		}).
		Return(nil)

	opened, err := svc.ClockIn(context.Background(), "bearer", validClockIn())
	assert.NoError(t, err)
	assert.Nil(t, opened.Record.JamPulang)

	api.On("DoJSON", mock.Anything, "POST", "/api/absensi/7/pulang", "bearer", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent := args.Get(4).(dto.ClockOutPayload)
			out := args.Get(5).(*dto.AttendanceEntry)
			closed := *opened.Record
			closed.JamPulang = &sent.JamPulang
			closed.FotoPulang = &sent.FotoPulang
			closed.LatitudePulang = &sent.LatitudePulang
			closed.LongitudePulang = &sent.LongitudePulang
			*out = closed
		}).
		Return(nil)

	closed, err := svc.ClockOut(context.Background(), "bearer", opened.Record.ID, dto.ClockOutInput{
		JamPulang: "17:02",
		Foto:      smallPhoto,
		Location:  &dto.Coordinates{Latitude: -7.64, Longitude: 111.54},
	})
	assert.NoError(t, err)

	// paruh pulang terisi, paruh masuk tidak berubah
	assert.NotNil(t, closed.Record.JamPulang)
	assert.Equal(t, "17:02", *closed.Record.JamPulang)
	assert.Equal(t, opened.Record.JamMasuk, closed.Record.JamMasuk)
	assert.Equal(t, opened.Record.FotoMasuk, closed.Record.FotoMasuk)
	assert.Equal(t, opened.Record.Tanggal, closed.Record.Tanggal)
}

func TestListForEmployee_MonthFilter(t *testing.T) {
	api := new(mocks.MockDoer)
	svc := NewAttendanceService(api, false)

	fixture := make([]dto.AttendanceEntry, 0, 12)
	for m := 1; m <= 12; m++ {
		fixture = append(fixture, dto.AttendanceEntry{
			ID:            m,
			EmailKaryawan: "budi@kantor.co.id",
			Tanggal:       fmt.Sprintf("2025-%02d-15", m),
		})
	}

	api.On("DoJSON", mock.Anything, "POST", "/api/absensi", "bearer", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(5).(*[]dto.AttendanceEntry)
			*out = fixture
		}).
		Return(nil)

	entries, err := svc.ListForEmployee(context.Background(), "bearer", "budi@kantor.co.id", 3)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "2025-03-15", entries[0].Tanggal)

	// tanpa filter: semua record ikut
	all, err := svc.ListForEmployee(context.Background(), "bearer", "budi@kantor.co.id", 0)
	assert.NoError(t, err)
	assert.Len(t, all, 12)
}

func TestFilterByMonth_SkipsUnparseableDates(t *testing.T) {
	entries := []dto.AttendanceEntry{
		{ID: 1, Tanggal: "2025-03-01"},
		{ID: 2, Tanggal: "bukan-tanggal"},
		{ID: 3, Tanggal: "2025-04-01"},
	}
	got := FilterByMonth(entries, 3)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}
