package domain

import (
	"errors"
	"net/http"
)

var (
	// ErrNoAPIKey means neither GEMINI_API_KEY nor GOOGLE_API_KEY resolved
	// to a non-empty value. Checked before anything else at submit time.
	ErrNoAPIKey = errors.New("no API key configured")

	// ErrNoImage means the form was submitted without an image file.
	ErrNoImage = errors.New("no image provided")

	// ErrUnsupportedFormat means the uploaded file is not JPG, JPEG or PNG.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrFileTooLarge means the upload exceeds the configured size limit.
	ErrFileTooLarge = errors.New("file too large")
)

// GenerationError wraps any failure from the model endpoint: transport,
// authentication, quota, malformed response. The underlying message is
// surfaced to the user as-is; there is no retry.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// MapHTTPStatus converts a domain error into the HTTP status for the JSON
// API. Input errors are the client's fault, a missing key is a server
// misconfiguration, and model endpoint failures are upstream failures.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoImage),
		errors.Is(err, ErrUnsupportedFormat),
		errors.Is(err, ErrFileTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoAPIKey):
		return http.StatusInternalServerError
	}

	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
