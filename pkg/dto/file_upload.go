package dto

import (
	"strings"
	"time"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// MaxUploadBytes is the largest accepted upload (10 MiB).
const MaxUploadBytes = 10 * 1024 * 1024

// AllowedMimeTypes lists the accepted FileUpload.MimeType values.
var AllowedMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"application/pdf",
	"text/plain",
}

// FileUpload describes an uploaded file. The filename must carry an extension.
type FileUpload struct {
	Filename   string    `json:"filename" validate:"min=1,max=255,pattern_filename"`
	SizeBytes  int64     `json:"size_bytes" validate:"gt=0,lte=10485760"`
	MimeType   string    `json:"mime_type" validate:"oneof=image/jpeg image/png image/gif application/pdf text/plain"`
	UploadDate time.Time `json:"upload_date" validate:"required"`
}

func (u FileUpload) Validate() error {
	return validator.Struct(u)
}

// FileExtension returns the part of the filename after the last dot.
func (u FileUpload) FileExtension() string {
	i := strings.LastIndexByte(u.Filename, '.')
	if i < 0 {
		return ""
	}
	return u.Filename[i+1:]
}

// SizeMB is the size in MiB rounded to two decimals.
func (u FileUpload) SizeMB() float64 {
	return round2(float64(u.SizeBytes) / (1024 * 1024))
}

func (FileUpload) requiredKeys() []string {
	return []string{"filename", "size_bytes", "mime_type", "upload_date"}
}
