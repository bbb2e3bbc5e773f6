// Package errs holds the error kinds shared by the store, the upload gateway
// and the HTTP handlers. Wrap them with %w and test with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrValidation           = errors.New("validation error")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrUploadFailed         = errors.New("upload failed")
	ErrNotFound             = errors.New("not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrPersistence          = errors.New("persistence error")
)

// UnsupportedMediaTypeError names the file that failed admission.
type UnsupportedMediaTypeError struct {
	Field string
	MIME  string
	Ext   string
}

func (e *UnsupportedMediaTypeError) Error() string {
	ext := e.Ext
	if ext == "" {
		ext = "(none)"
	}
	mime := e.MIME
	if mime == "" {
		mime = "(none)"
	}
	return fmt.Sprintf("unsupported file type for %s: mime %s, extension %s", e.Field, mime, ext)
}

func (e *UnsupportedMediaTypeError) Is(target error) bool {
	return target == ErrUnsupportedMediaType
}

// Validation returns a ValidationError with the given message.
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
