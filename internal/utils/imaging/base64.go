package imaging

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidImage = errors.New("invalid base64 image payload")

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// DecodeBase64Image decodes a "data:image/<type>;base64,<payload>" data
// URI into raw bytes plus a file extension. A bare base64 payload is
// accepted and treated as PNG.
func DecodeBase64Image(encoded string) ([]byte, string, error) {
	ext := "png"
	payload := encoded

	if strings.HasPrefix(encoded, "data:") {
		parts := strings.SplitN(encoded, ";base64,", 2)
		if len(parts) != 2 {
			return nil, "", ErrInvalidImage
		}
		mimeType := strings.TrimPrefix(parts[0], "data:")
		mapped, ok := extensions[mimeType]
		if !ok {
			return nil, "", ErrInvalidImage
		}
		ext = mapped
		payload = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", ErrInvalidImage
	}
	if len(data) == 0 {
		return nil, "", ErrInvalidImage
	}

	return data, ext, nil
}
