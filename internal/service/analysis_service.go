package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Keertana04/Gemini-Historical-Artifact-Description/internal/domain"
	"github.com/Keertana04/Gemini-Historical-Artifact-Description/internal/prompts"
)

// GenerativeClient is the outbound dependency of the analysis service.
// Satisfied by gemini.Client.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

type AnalysisService interface {
	Analyze(ctx context.Context, query domain.AnalysisQuery) (*domain.Analysis, error)
}

type analysisService struct {
	client GenerativeClient
	log    *zap.Logger
}

func NewAnalysisService(client GenerativeClient, log *zap.Logger) AnalysisService {
	return &analysisService{
		client: client,
		log:    log,
	}
}

// Analyze composes the prompt for the selected option and issues exactly one
// model call. Preconditions (API key resolved, image present) are enforced
// by the handler before this is invoked.
func (s *analysisService) Analyze(ctx context.Context, query domain.AnalysisQuery) (*domain.Analysis, error) {
	prompt := prompts.Compose(query.Option.PromptTemplate, query.FreeText)

	text, err := s.client.GenerateContent(ctx, prompt, query.Image.Data, query.Image.MimeType)
	if err != nil {
		s.log.Error("Generation failed",
			zap.String("option", query.Option.Label),
			zap.Error(err))
		return nil, &domain.GenerationError{Err: err}
	}

	analysis := &domain.Analysis{
		ID:          uuid.New().String(),
		Option:      query.Option.Label,
		Text:        text,
		GeneratedAt: time.Now(),
	}

	s.log.Info("Analysis generated",
		zap.String("id", analysis.ID),
		zap.String("option", analysis.Option),
		zap.Int("image_size", len(query.Image.Data)),
		zap.Int("response_chars", len(text)))

	return analysis, nil
}
