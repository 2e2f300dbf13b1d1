package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Taksonomi error lokal. Semua kegagalan berujung ke JSON envelope, tidak
// ada yang fatal ke proses.

// AuthenticationError: kredensial ditolak (atau kosong) saat login.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// UnauthenticatedError: tidak ada sesi valid; klien wajib redirect ke sign-in.
type UnauthenticatedError struct {
	Message string
}

func (e *UnauthenticatedError) Error() string { return e.Message }

// ValidationError: precondition lokal gagal. Tidak pernah menyentuh network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// SubmissionError: backend menolak atau tidak terjangkau. Operasi dianggap
// tidak pernah diterapkan.
type SubmissionError struct {
	Status  int
	Message string
}

func (e *SubmissionError) Error() string { return e.Message }

// NewValidationError untuk satu field yang gagal (constraint pertama yang
// tidak terpenuhi).
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// StatusFor memetakan error taksonomi ke status HTTP.
func StatusFor(err error) int {
	var authErr *AuthenticationError
	var unauthErr *UnauthenticatedError
	var valErr *ValidationError
	var subErr *SubmissionError

	switch {
	case errors.As(err, &authErr):
		return fiber.StatusUnauthorized
	case errors.As(err, &unauthErr):
		return fiber.StatusUnauthorized
	case errors.As(err, &valErr):
		return fiber.StatusBadRequest
	case errors.As(err, &subErr):
		if subErr.Status >= 400 {
			return subErr.Status
		}
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// FromError menulis envelope error sesuai taksonomi. Dipakai semua controller
// supaya format respons seragam.
func FromError(c *fiber.Ctx, err error) error {
	var valErr *ValidationError
	if errors.As(err, &valErr) && valErr.Field != "" {
		return ErrorWithDetails(c, fiber.StatusBadRequest, valErr.Message, fiber.Map{
			valErr.Field: valErr.Message,
		})
	}
	return Error(c, StatusFor(err), err.Error())
}
