// Package form provides field-level validation markers and password strength
// feedback. Validation never throws: each check sets or clears a per-field
// error without blocking the rest of the form.
package form

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxUploadSize is the largest accepted upload.
const MaxUploadSize = 5 * 1024 * 1024

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)

	allowedExtensions = map[string]struct{}{
		"txt": {}, "pdf": {}, "png": {}, "jpg": {}, "jpeg": {}, "gif": {},
		"doc": {}, "docx": {}, "xls": {}, "xlsx": {}, "pptx": {}, "ppt": {},
		"csv": {},
	}
)

// Errors maps field names to their current inline error message. A field with
// no entry is clean.
type Errors map[string]string

// Set records or clears the marker for one field.
func (e Errors) Set(field, msg string) {
	if msg == "" {
		delete(e, field)
		return
	}
	e[field] = msg
}

// Valid reports whether no field carries an error.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Required checks a trimmed non-empty value.
func Required(value string) string {
	if strings.TrimSpace(value) == "" {
		return "required"
	}
	return ""
}

// Email checks basic address shape.
func Email(value string) string {
	if value == "" {
		return ""
	}
	if !emailPattern.MatchString(value) {
		return "invalid email address"
	}
	return ""
}

// Phone checks a tolerant phone number shape.
func Phone(value string) string {
	if value == "" {
		return ""
	}
	if !phonePattern.MatchString(value) {
		return "invalid phone number"
	}
	return ""
}

// Upload checks an attachment's extension and size against the portal's
// accepted set.
func Upload(filename string, size int64) string {
	if filename == "" {
		return ""
	}
	dot := strings.LastIndex(filename, ".")
	if dot < 0 || dot == len(filename)-1 {
		return "file type not allowed"
	}
	ext := strings.ToLower(filename[dot+1:])
	if _, ok := allowedExtensions[ext]; !ok {
		return "file type not allowed"
	}
	if size > MaxUploadSize {
		return fmt.Sprintf("file exceeds %s", FormatFileSize(MaxUploadSize))
	}
	return ""
}

// FormatFileSize renders a byte count the way the portal does: two decimals
// and Bytes/KB/MB/GB units.
func FormatFileSize(size int64) string {
	if size <= 0 {
		return "0 Bytes"
	}
	value := float64(size)
	for _, unit := range []string{"Bytes", "KB", "MB", "GB"} {
		if value < 1024.0 {
			return fmt.Sprintf("%.2f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.2f TB", value)
}
