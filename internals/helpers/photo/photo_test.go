package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "hadirku_backend/internals/helpers"
)

func pngFixture(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncodeEvidence_EmptyRejected(t *testing.T) {
	_, err := EncodeEvidence("foto_masuk", nil, false)

	var valErr *helper.ValidationError
	assert.True(t, errors.As(err, &valErr))
	assert.Equal(t, "foto_masuk", valErr.Field)
}

func TestEncodeEvidence_SizeCapBeforeEncoding(t *testing.T) {
	_, err := EncodeEvidence("foto_masuk", make([]byte, MaxUploadSize+1), false)

	var valErr *helper.ValidationError
	assert.True(t, errors.As(err, &valErr))
	assert.Equal(t, "Ukuran foto melebihi 20MB!", valErr.Message)
}

func TestEncodeEvidence_DataURLRoundTrip(t *testing.T) {
	raw := pngFixture(t, 8, 8)

	out, err := EncodeEvidence("foto_masuk", raw, false)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/png;base64,"))

	// tanpa normalisasi byte asli dipertahankan apa adanya
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/png;base64,"))
	assert.NoError(t, err)
	assert.Equal(t, raw, decoded)
}

func TestEncodeEvidence_NormalizeProducesWebP(t *testing.T) {
	raw := pngFixture(t, 16, 16)

	out, err := EncodeEvidence("foto_pulang", raw, true)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "data:image/webp;base64,"))
}

func TestEncodeEvidence_NormalizeRejectsNonImage(t *testing.T) {
	_, err := EncodeEvidence("foto_masuk", []byte("jelas bukan gambar"), true)

	var valErr *helper.ValidationError
	assert.True(t, errors.As(err, &valErr))
}
