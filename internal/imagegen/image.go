package imagegen

import (
	"encoding/base64"
	"strings"
)

const imageMIMEPrefix = "image/"

// Image is an inline binary payload returned by the upstream model.
type Image struct {
	MIMEType string
	Data     []byte
}

// IsImage reports whether the declared MIME type is an image/* type.
func (i Image) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(i.MIMEType), imageMIMEPrefix)
}

// Base64 returns the standard base64 encoding of the payload.
func (i Image) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

// DataURI renders the image as data:<mime>;base64,<payload>.
func (i Image) DataURI() string {
	return "data:" + i.MIMEType + ";base64," + i.Base64()
}

// FirstImage returns the first part carrying inline image data.
func FirstImage(parts []Part) (Image, bool) {
	for _, part := range parts {
		if part == nil {
			continue
		}
		img, ok := part.InlineData()
		if !ok || !img.IsImage() {
			continue
		}
		return img, true
	}
	return Image{}, false
}
