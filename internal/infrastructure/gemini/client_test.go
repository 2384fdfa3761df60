package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x01}

func newTestClient(url string) *Client {
	c := NewClient("test-key", "test-model", 5*time.Second)
	c.baseURL = url
	return c
}

func TestGenerateContentRequestFormat(t *testing.T) {
	var (
		gotPath   string
		gotAPIKey string
		gotBody   generateRequest
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"A bronze axe head."}]}}]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)

	text, err := client.GenerateContent(context.Background(), "Identify this artifact.", pngBytes, "image/png")
	if err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}
	if text != "A bronze axe head." {
		t.Errorf("text = %q, want %q", text, "A bronze axe head.")
	}

	if gotPath != "/v1beta/models/test-model:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAPIKey != "test-key" {
		t.Errorf("x-goog-api-key = %q, want test-key", gotAPIKey)
	}

	if len(gotBody.Contents) != 1 {
		t.Fatalf("len(contents) = %d, want 1", len(gotBody.Contents))
	}
	parts := gotBody.Contents[0].Parts
	if len(parts) != 2 {
		t.Fatalf("len(parts) = %d, want 2", len(parts))
	}
	if parts[0].Text != "Identify this artifact." {
		t.Errorf("text part = %q", parts[0].Text)
	}
	if parts[1].InlineData == nil {
		t.Fatal("missing inline_data part")
	}
	if parts[1].InlineData.MimeType != "image/png" {
		t.Errorf("mime_type = %q, want image/png", parts[1].InlineData.MimeType)
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1].InlineData.Data)
	if err != nil {
		t.Fatalf("image data is not valid base64: %v", err)
	}
	if string(decoded) != string(pngBytes) {
		t.Error("decoded image bytes do not match the upload")
	}
}

func TestGenerateContentJoinsTextParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"A bronze "},{"text":"axe head."}]}}]}`))
	}))
	defer srv.Close()

	text, err := newTestClient(srv.URL).GenerateContent(context.Background(), "p", pngBytes, "image/png")
	if err != nil {
		t.Fatalf("GenerateContent error: %v", err)
	}
	if text != "A bronze axe head." {
		t.Errorf("text = %q, want joined parts", text)
	}
}

func TestGenerateContentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateContent(context.Background(), "p", pngBytes, "image/png")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error = %q, want it to contain the API message", err.Error())
	}
}

func TestGenerateContentNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateContent(context.Background(), "p", pngBytes, "image/png")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "502") || !strings.Contains(err.Error(), "upstream unavailable") {
		t.Errorf("error = %q, want status and body surfaced", err.Error())
	}
}

func TestGenerateContentEmptyResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no candidates", `{"candidates":[]}`},
		{"empty text", `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			if _, err := newTestClient(srv.URL).GenerateContent(context.Background(), "p", pngBytes, "image/png"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
