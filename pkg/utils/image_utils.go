package utils

import (
	"encoding/base64"
	"strings"
)

// ContentTypeForExt maps an upload's file extension to its MIME type.
// Returns an empty string for anything other than JPG, JPEG or PNG.
func ContentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	default:
		return ""
	}
}

// DataURI encodes image bytes as a data URI so the uploaded artifact can be
// echoed back into the page without any server-side storage.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
