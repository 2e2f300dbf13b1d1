package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hadirku_backend/internals/constants"
	"hadirku_backend/internals/features/auth/dto"
	authModel "hadirku_backend/internals/features/auth/model"
	helper "hadirku_backend/internals/helpers"
	"hadirku_backend/internals/helpers/hrapi"
)

// Umur sesi fixed 24 jam sejak diterbitkan, tanpa sliding renewal.
const SessionTTL = 24 * time.Hour

const (
	loginPath    = "/api/login"
	registerPath = "/api/register"
)

// AuthService menukar kredensial menjadi identitas bertanda tangan yang
// dipakai semua call lain selama umur sesi browser.
type AuthService struct {
	API    hrapi.Doer
	Secret string

	// dipakai test untuk mengontrol waktu terbit
	Now func() time.Time
}

func NewAuthService(api hrapi.Doer, secret string) *AuthService {
	return &AuthService{API: api, Secret: secret, Now: time.Now}
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Authenticate mengirim kredensial ke backend HR dan, bila diterima, mencetak
// sesi HS256 dengan subject UUID baru dan klaim {email, role, token}.
// Kredensial kosong ditolak sebelum ada network call; kegagalan backend
// diteruskan apa adanya sebagai AuthenticationError.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, &helper.AuthenticationError{Message: "Email dan password wajib diisi"}
	}

	var resp dto.LoginBackendResponse
	err := s.API.DoJSON(ctx, "POST", loginPath, "", dto.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var subErr *helper.SubmissionError
		if errors.As(err, &subErr) {
			return nil, &helper.AuthenticationError{Message: subErr.Message}
		}
		return nil, &helper.AuthenticationError{Message: "Login gagal"}
	}

	if resp.User == nil || resp.User.Token == "" {
		return nil, &helper.AuthenticationError{Message: "Login gagal"}
	}

	role, ok := constants.ParseRole(resp.User.Role)
	if !ok {
		log.Printf("[ERROR] login: role tidak dikenal %q untuk %s", resp.User.Role, resp.User.Email)
		return nil, &helper.AuthenticationError{Message: "Role tidak dikenal"}
	}

	now := s.now()
	exp := now.Add(SessionTTL)
	claims := jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": resp.User.Email,
		"role":  role.String(),
		"token": resp.User.Token,
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		Email:       resp.User.Email,
		Role:        role.String(),
		ExpiresAt:   exp.Unix(),
	}, nil
}

// Register meneruskan pendaftaran akun baru apa adanya ke backend HR.
// Endpoint publik: belum ada sesi, jadi tanpa bearer. Penolakan backend
// (email sudah terpakai, dsb) diteruskan sebagai SubmissionError.
func (s *AuthService) Register(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, helper.NewValidationError("form", "Data pendaftaran wajib diisi")
	}

	var out json.RawMessage
	if err := s.API.DoJSON(ctx, "POST", registerPath, "", payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Revoke memasukkan token sesi ke revocation list sampai expiry alaminya.
// Token yang tidak bisa dibaca tetap dicabut dengan TTL penuh.
func (s *AuthService) Revoke(db *gorm.DB, rawToken string) error {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return &helper.UnauthenticatedError{Message: "Sesi tidak ditemukan"}
	}

	expiredAt := s.now().Add(SessionTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.Secret), nil
	}); err == nil {
		if v, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(v), 0)
		}
	}

	entry := authModel.TokenBlacklist{Token: rawToken, ExpiredAt: expiredAt}
	if err := db.Where("token = ?", rawToken).FirstOrCreate(&entry).Error; err != nil {
		log.Printf("[ERROR] gagal menulis blacklist: %v", err)
		return err
	}
	return nil
}
