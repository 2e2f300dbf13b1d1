package helper

import "github.com/go-playground/validator/v10"

// Validate dipakai controller untuk memeriksa format field wire sebelum
// input masuk ke service. Field kosong diloloskan di sini; kewajiban isi
// tetap urusan service dengan pesan aslinya.
var Validate = validator.New()
