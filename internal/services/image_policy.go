package services

import (
	"encoding/base64"
	"strings"
)

// MaxImageBytes caps the decoded image size accepted for analysis.
const MaxImageBytes = 10 * 1024 * 1024

var acceptedImageFormats = map[string]string{
	"jpg":  "jpeg",
	"jpeg": "jpeg",
	"png":  "png",
	"webp": "webp",
	"heic": "heic",
}

// DecodeImagePayload validates a base64-encoded image and its declared format
// and returns the raw bytes plus the normalized format name. Validation
// failures come back as FieldErrors so handlers can report them per field.
func DecodeImagePayload(encoded string, format string) ([]byte, string, FieldErrors) {
	fieldErrors := FieldErrors{}

	normalized, known := acceptedImageFormats[strings.ToLower(strings.TrimSpace(format))]
	if !known {
		fieldErrors["image_format"] = "unsupported image format"
	}

	trimmed := strings.TrimSpace(encoded)
	if trimmed == "" {
		fieldErrors["image_data"] = "image data is required"
		return nil, "", fieldErrors
	}
	// Tolerate data-URL payloads from clients that send the whole attribute.
	if comma := strings.IndexByte(trimmed, ','); comma >= 0 && strings.HasPrefix(trimmed, "data:") {
		trimmed = trimmed[comma+1:]
	}

	image, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		fieldErrors["image_data"] = "image data is not valid base64"
		return nil, "", fieldErrors
	}
	if len(image) == 0 {
		fieldErrors["image_data"] = "image data is empty"
		return nil, "", fieldErrors
	}
	if len(image) > MaxImageBytes {
		fieldErrors["image_data"] = "image exceeds the 10 MB limit"
		return nil, "", fieldErrors
	}

	if len(fieldErrors) > 0 {
		return nil, "", fieldErrors
	}
	return image, normalized, nil
}
