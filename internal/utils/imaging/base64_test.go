package imaging_test

import (
	"Foodgram-Backend/internal/utils/imaging"
	"encoding/base64"
	"errors"
	"testing"
)

func TestDecodeBase64Image(t *testing.T) {
	raw := []byte("fake image bytes")
	payload := base64.StdEncoding.EncodeToString(raw)

	cases := []struct {
		name    string
		encoded string
		wantExt string
	}{
		{"png data uri", "data:image/png;base64," + payload, "png"},
		{"jpeg data uri", "data:image/jpeg;base64," + payload, "jpg"},
		{"webp data uri", "data:image/webp;base64," + payload, "webp"},
		{"bare payload defaults to png", payload, "png"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, ext, err := imaging.DecodeBase64Image(tc.encoded)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if ext != tc.wantExt {
				t.Fatalf("expected ext %q, got %q", tc.wantExt, ext)
			}
			if string(data) != string(raw) {
				t.Fatalf("decoded bytes differ from input")
			}
		})
	}
}

func TestDecodeBase64ImageInvalid(t *testing.T) {
	cases := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not base64", "data:image/png;base64,@@@not-base64@@@"},
		{"missing payload marker", "data:image/png,abcd"},
		{"unsupported mime", "data:image/tiff;base64,YWJjZA=="},
		{"empty payload", "data:image/png;base64,"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := imaging.DecodeBase64Image(tc.encoded); !errors.Is(err, imaging.ErrInvalidImage) {
				t.Fatalf("expected invalid image error, got %v", err)
			}
		})
	}
}
