package dto

// AttendanceEntry memetakan satu record absensi backend: satu karyawan, satu
// hari kalender. Paruh pulang opsional sampai clock-out terjadi.
type AttendanceEntry struct {
	ID             int     `json:"id"`
	EmailKaryawan  string  `json:"email_karyawan"`
	NamaKaryawan   string  `json:"nama_karyawan,omitempty"`
	Tanggal        string  `json:"tanggal"`
	JamMasuk       string  `json:"jam_masuk"`
	FotoMasuk      string  `json:"foto_masuk"`
	LatitudeMasuk  float64 `json:"latitude_masuk"`
	LongitudeMasuk float64 `json:"longitude_masuk"`
	Status         string  `json:"status"`

	JamPulang       *string  `json:"jam_pulang,omitempty"`
	FotoPulang      *string  `json:"foto_pulang,omitempty"`
	LatitudePulang  *float64 `json:"latitude_pulang,omitempty"`
	LongitudePulang *float64 `json:"longitude_pulang,omitempty"`
}

// Coordinates dalam derajat desimal. Lokasi tak diketahui direpresentasikan
// sebagai pointer nil, bukan (0,0); sentinel nol baru muncul di wire demi
// kompatibilitas kontrak backend.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ClockInInput adalah aksi "masuk": membuka record hari itu. Tag validate
// hanya menjaga format; field kosong ditolak service dengan pesan aslinya.
type ClockInInput struct {
	EmailKaryawan string `validate:"omitempty,email"`
	Tanggal       string `validate:"omitempty,datetime=2006-01-02"`
	JamMasuk      string `validate:"omitempty,datetime=15:04"`
	Foto          []byte
	Location      *Coordinates
}

// ClockOutInput adalah aksi "pulang": menutup record yang sudah ada.
type ClockOutInput struct {
	JamPulang string `validate:"omitempty,datetime=15:04"`
	Foto      []byte
	Location  *Coordinates
}

// Payload wire ke backend. Field mengikuti kontrak backend apa adanya.
type ClockInPayload struct {
	EmailKaryawan  string  `json:"email_karyawan"`
	Tanggal        string  `json:"tanggal"`
	JamMasuk       string  `json:"jam_masuk"`
	FotoMasuk      string  `json:"foto_masuk"`
	LatitudeMasuk  float64 `json:"latitude_masuk"`
	LongitudeMasuk float64 `json:"longitude_masuk"`
}

type ClockOutPayload struct {
	JamPulang       string  `json:"jam_pulang"`
	FotoPulang      string  `json:"foto_pulang"`
	LatitudePulang  float64 `json:"latitude_pulang"`
	LongitudePulang float64 `json:"longitude_pulang"`
}

// ListFilter adalah body filter endpoint list backend.
type ListFilter struct {
	Email string `json:"email,omitempty"`
}

// ClockResult membungkus record hasil aksi plus peringatan recoverable
// (mis. lokasi tidak tersedia).
type ClockResult struct {
	Record  *AttendanceEntry `json:"record"`
	Warning string           `json:"warning,omitempty"`
}
