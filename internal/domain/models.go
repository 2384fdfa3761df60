package domain

import (
	"time"
)

// AnalysisOption is one of the fixed analysis modes offered to the user.
// The set of options is defined at startup and never mutated.
type AnalysisOption struct {
	Label          string `json:"label"`
	PromptTemplate string `json:"-"`
}

// UploadedImage holds the raw bytes of the artifact photo for the duration
// of a single submission. Nothing is persisted across submissions.
type UploadedImage struct {
	Data     []byte
	MimeType string
}

// AnalysisQuery is assembled from the form state at submit time and consumed
// immediately by the analysis service.
type AnalysisQuery struct {
	Option   AnalysisOption
	FreeText string
	Image    UploadedImage
}

// Analysis is the outcome of one successful submission.
type Analysis struct {
	ID          string    `json:"id"`
	Option      string    `json:"option"`
	Text        string    `json:"result"`
	GeneratedAt time.Time `json:"generated_at"`
}
