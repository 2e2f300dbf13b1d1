package hrapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	helper "hadirku_backend/internals/helpers"
)

func TestDoJSON_SendsBearerAndDecodes(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "status": "Tepat Waktu"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	var out struct {
		ID     int    `json:"id"`
		Status string `json:"status"`
	}
	err := c.DoJSON(context.Background(), "POST", "/api/absensi/created", "token-123", map[string]string{"a": "b"}, &out)

	assert.NoError(t, err)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, 7, out.ID)
}

func TestDoJSON_BackendMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message": "Absensi hari ini sudah ada"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.DoJSON(context.Background(), "POST", "/api/absensi/created", "tok", nil, nil)

	var subErr *helper.SubmissionError
	assert.True(t, errors.As(err, &subErr))
	assert.Equal(t, http.StatusUnprocessableEntity, subErr.Status)
	assert.Equal(t, "Absensi hari ini sudah ada", subErr.Message)
}

func TestDoJSON_GenericMessageWhenEnvelopeMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.DoJSON(context.Background(), "GET", "/api/user_data", "tok", nil, nil)

	var subErr *helper.SubmissionError
	assert.True(t, errors.As(err, &subErr))
	assert.Equal(t, http.StatusInternalServerError, subErr.Status)
	assert.Contains(t, subErr.Message, "500")
}

func TestDoJSON_TransportFailureIsSubmissionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // server mati: koneksi pasti gagal

	c := NewClient(srv.URL)
	err := c.DoJSON(context.Background(), "POST", "/api/login", "", nil, nil)

	var subErr *helper.SubmissionError
	assert.True(t, errors.As(err, &subErr))
	assert.Equal(t, http.StatusBadGateway, subErr.Status)
}

func TestDoJSON_EmptyBodyLeavesOutZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	var out map[string]any
	err := c.DoJSON(context.Background(), "DELETE", "/api/izin/3", "tok", nil, &out)
	assert.NoError(t, err)
	assert.Nil(t, out)
}
