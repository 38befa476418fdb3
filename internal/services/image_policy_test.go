package services

import (
	"encoding/base64"
	"testing"
)

func TestDecodeImagePayload(t *testing.T) {
	t.Parallel()

	encoded := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	image, format, fieldErrors := DecodeImagePayload(encoded, "JPG")
	if fieldErrors != nil {
		t.Fatalf("unexpected field errors: %v", fieldErrors)
	}
	if string(image) != "fake image bytes" {
		t.Fatalf("image = %q", image)
	}
	if format != "jpeg" {
		t.Fatalf("format = %q, want jpeg", format)
	}
}

func TestDecodeImagePayloadDataURL(t *testing.T) {
	t.Parallel()

	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
	image, format, fieldErrors := DecodeImagePayload(encoded, "png")
	if fieldErrors != nil {
		t.Fatalf("unexpected field errors: %v", fieldErrors)
	}
	if len(image) != 3 {
		t.Fatalf("image length = %d, want 3", len(image))
	}
	if format != "png" {
		t.Fatalf("format = %q, want png", format)
	}
}

func TestDecodeImagePayloadRejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		encoded   string
		format    string
		wantField string
	}{
		{name: "empty data", encoded: "  ", format: "jpeg", wantField: "image_data"},
		{name: "invalid base64", encoded: "%%%not-base64%%%", format: "jpeg", wantField: "image_data"},
		{name: "unsupported format", encoded: "aGVsbG8=", format: "bmp", wantField: "image_format"},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, _, fieldErrors := DecodeImagePayload(testCase.encoded, testCase.format)
			if fieldErrors == nil {
				t.Fatal("expected field errors")
			}
			if _, ok := fieldErrors[testCase.wantField]; !ok {
				t.Fatalf("expected error on %q, got %v", testCase.wantField, fieldErrors)
			}
		})
	}
}

func TestDecodeImagePayloadSizeCap(t *testing.T) {
	t.Parallel()

	oversized := base64.StdEncoding.EncodeToString(make([]byte, MaxImageBytes+1))
	_, _, fieldErrors := DecodeImagePayload(oversized, "jpeg")
	if fieldErrors == nil {
		t.Fatal("expected field errors for oversized image")
	}
	if _, ok := fieldErrors["image_data"]; !ok {
		t.Fatalf("expected error on image_data, got %v", fieldErrors)
	}

	atLimit := base64.StdEncoding.EncodeToString(make([]byte, MaxImageBytes))
	if _, _, fieldErrors := DecodeImagePayload(atLimit, "jpeg"); fieldErrors != nil {
		t.Fatalf("image at the limit should pass, got %v", fieldErrors)
	}
}
