// internals/helpers/hrapi/client.go
package hrapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	helper "hadirku_backend/internals/helpers"
)

// Doer adalah kontrak minimal ke backend HR. Service memegang interface ini
// supaya gampang di-mock di test.
type Doer interface {
	DoJSON(ctx context.Context, method, path, bearer string, body, out any) error
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// errEnvelope adalah bentuk error standar backend: {"message": "..."}
type errEnvelope struct {
	Message string `json:"message"`
}

// DoJSON mengirim satu request JSON ke backend HR. Bearer boleh kosong
// (hanya untuk /api/login). Non-2xx dikembalikan sebagai SubmissionError
// dengan pesan backend apa adanya bila tersedia; kegagalan transport
// (termasuk timeout) juga SubmissionError, tidak pernah ditelan diam-diam.
func (c *Client) DoJSON(ctx context.Context, method, path, bearer string, body, out any) error {
	reqURL := c.BaseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gagal marshal payload %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("gagal membuat request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Printf("[ERROR] hrapi %s %s: %v", method, path, err)
		return &helper.SubmissionError{
			Status:  http.StatusBadGateway,
			Message: "Backend HR tidak dapat dihubungi",
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env errEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&env)
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("Backend HR mengembalikan status %d", resp.StatusCode)
		}
		return &helper.SubmissionError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &helper.SubmissionError{
			Status:  http.StatusBadGateway,
			Message: "Respons backend HR tidak dapat dibaca",
		}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &helper.SubmissionError{
			Status:  http.StatusBadGateway,
			Message: "Respons backend HR tidak dapat dibaca",
		}
	}
	return nil
}
