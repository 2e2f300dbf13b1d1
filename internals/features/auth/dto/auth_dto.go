package dto

// LoginRequest adalah kredensial dari form sign-in. Email kosong tetap lolos
// validasi format; penolakan kredensial kosong urusan service.
type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// BackendUser adalah isi field "user" pada respons login backend HR.
type BackendUser struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// LoginBackendResponse adalah envelope respons /api/login backend.
type LoginBackendResponse struct {
	User *BackendUser `json:"user"`
}

// LoginResponse dikembalikan ke klien setelah sesi berhasil dibuat.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	ExpiresAt   int64  `json:"expires_at"`
}

// MeResponse adalah identitas sesi aktif.
type MeResponse struct {
	Subject   string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expires_at"`
}
