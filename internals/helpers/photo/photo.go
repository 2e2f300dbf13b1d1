package photo

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	helper "hadirku_backend/internals/helpers"
)

// Batas ukuran foto bukti, dicek terhadap byte mentah SEBELUM encoding.
const MaxUploadSize = 20 * 1024 * 1024

// Lebar maksimum hasil normalisasi.
const maxWidth = 1280

const webpQuality = 80

// EncodeEvidence mengubah foto bukti menjadi data URL base64 yang siap
// dikirim inline ke backend. Saat normalize aktif, foto didecode, diperkecil
// bila terlalu lebar, lalu di-encode ulang sebagai WebP; tanpa normalisasi
// byte asli dipertahankan apa adanya (kompatibel dengan kontrak backend).
func EncodeEvidence(field string, data []byte, normalize bool) (string, error) {
	if len(data) == 0 {
		return "", helper.NewValidationError(field, "Foto wajib diupload!")
	}
	if len(data) > MaxUploadSize {
		return "", helper.NewValidationError(field, "Ukuran foto melebihi 20MB!")
	}

	mime := http.DetectContentType(data)

	if normalize {
		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return "", helper.NewValidationError(field, "File foto bukan gambar yang valid")
		}
		if img.Bounds().Dx() > maxWidth {
			img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
		}
		var buf bytes.Buffer
		if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
			return "", fmt.Errorf("gagal encode webp: %w", err)
		}
		data = buf.Bytes()
		mime = "image/webp"
	}

	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
