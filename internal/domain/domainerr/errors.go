// Package domainerr agrupa los errores sentinela compartidos entre módulos.
// Los handlers los mapean a redirects / status con errors.Is.
package domainerr

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUploadFailed = errors.New("upload failed")
)
