package handler

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Keertana04/Gemini-Historical-Artifact-Description/internal/config"
	"github.com/Keertana04/Gemini-Historical-Artifact-Description/internal/domain"
	"github.com/Keertana04/Gemini-Historical-Artifact-Description/internal/prompts"
	"github.com/Keertana04/Gemini-Historical-Artifact-Description/internal/service"
	"github.com/Keertana04/Gemini-Historical-Artifact-Description/pkg/utils"
)

type Handler struct {
	service service.AnalysisService
	cfg     *config.Config
	log     *zap.Logger
}

func NewHandler(service service.AnalysisService, cfg *config.Config, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
		log:     log,
	}
}

// GetUI renders the page in its initial state: no image, first option
// selected, empty context.
func (h *Handler) GetUI(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.baseView(prompts.Default().Label, ""))
}

// Analyze handles the form submission and re-renders the page with exactly
// one of result or error. Each submission replaces the previous outcome.
func (h *Handler) Analyze(c *gin.Context) {
	query, err := h.buildQuery(c)

	view := h.baseView(query.Option.Label, query.FreeText)
	if len(query.Image.Data) > 0 {
		view["Preview"] = template.URL(utils.DataURI(query.Image.MimeType, query.Image.Data))
	}

	if err == nil {
		var analysis *domain.Analysis
		analysis, err = h.service.Analyze(c.Request.Context(), query)
		if err == nil {
			view["ResultLabel"] = analysis.Option
			view["Result"] = analysis.Text
		}
	}

	if err != nil {
		h.log.Warn("Submission rejected", zap.Error(err))
		view["Error"] = errorMessage(err)
	}

	c.HTML(http.StatusOK, "index.html", view)
}

// AnalyzeAPI is the JSON variant of Analyze for programmatic clients. Same
// validation pipeline, multipart form in, JSON out.
func (h *Handler) AnalyzeAPI(c *gin.Context) {
	query, err := h.buildQuery(c)
	if err == nil {
		var analysis *domain.Analysis
		analysis, err = h.service.Analyze(c.Request.Context(), query)
		if err == nil {
			c.JSON(http.StatusOK, analysis)
			return
		}
	}

	h.log.Warn("API submission rejected", zap.Error(err))
	c.JSON(domain.MapHTTPStatus(err), gin.H{"error": errorMessage(err)})
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// buildQuery assembles an AnalysisQuery from the current form state. The
// API key check comes first, then the image check, then format and size.
// Selection and context are parsed unconditionally so an error render can
// echo them back.
func (h *Handler) buildQuery(c *gin.Context) (domain.AnalysisQuery, error) {
	query := domain.AnalysisQuery{
		Option:   prompts.Default(),
		FreeText: c.PostForm("context"),
	}
	if opt, ok := prompts.Find(c.PostForm("option")); ok {
		query.Option = opt
	}

	if h.cfg.Gemini.APIKey == "" {
		return query, domain.ErrNoAPIKey
	}

	file, err := c.FormFile("image")
	if err != nil {
		return query, domain.ErrNoImage
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !slices.Contains(h.cfg.App.AllowedFormats, ext) {
		return query, domain.ErrUnsupportedFormat
	}

	if file.Size > h.cfg.App.MaxUploadSize {
		return query, domain.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return query, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return query, fmt.Errorf("failed to read upload: %w", err)
	}

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = utils.ContentTypeForExt(ext)
	}

	query.Image = domain.UploadedImage{
		Data:     data,
		MimeType: contentType,
	}

	return query, nil
}

func (h *Handler) baseView(selected, freeText string) gin.H {
	return gin.H{
		"Labels":       prompts.Labels(),
		"Selected":     selected,
		"Context":      freeText,
		"DisplayWidth": h.cfg.App.ImageDisplayWidth,
	}
}

// errorMessage converts a domain error into the text shown to the user.
// Model endpoint failures are surfaced raw behind a fixed prefix.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoAPIKey):
		return "Add GEMINI_API_KEY or GOOGLE_API_KEY to your environment or .env file."
	case errors.Is(err, domain.ErrNoImage):
		return "Please upload an image first."
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return "Invalid file format. Only JPG, JPEG, PNG allowed."
	case errors.Is(err, domain.ErrFileTooLarge):
		return "File too large."
	default:
		return "Error: " + err.Error()
	}
}
