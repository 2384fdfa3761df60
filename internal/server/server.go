package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Keertana04/Gemini-Historical-Artifact-Description/internal/config"
	"github.com/Keertana04/Gemini-Historical-Artifact-Description/internal/handler"
	"github.com/Keertana04/Gemini-Historical-Artifact-Description/internal/infrastructure/gemini"
	"github.com/Keertana04/Gemini-Historical-Artifact-Description/internal/service"
)

type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	log        *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.LoadHTMLGlob("web/templates/*")
	router.MaxMultipartMemory = cfg.App.MaxUploadSize

	client := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	analysisService := service.NewAnalysisService(client, log)

	h := handler.NewHandler(analysisService, cfg, log)

	router.GET("/", h.GetUI)
	router.GET("/health", h.HealthCheck)
	router.POST("/analyze", h.Analyze)

	api := router.Group("/api")
	{
		api.POST("/analyze", h.AnalyzeAPI)
	}

	router.Static("/static", "./web/static")

	server := &Server{
		httpServer: &http.Server{
			Addr:        cfg.Server.Host + ":" + cfg.Server.Port,
			Handler:     router,
			ReadTimeout: 30 * time.Second,
			// The response cannot start until the model call returns,
			// so the write timeout has to cover it.
			WriteTimeout:   cfg.Gemini.Timeout + 30*time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
		cfg: cfg,
		log: log,
	}

	log.Info("Server created successfully",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.String("model", cfg.Gemini.Model))

	return server, nil
}

func (s *Server) Run() error {
	s.log.Info("Server is running",
		zap.String("host", s.cfg.Server.Host),
		zap.String("port", s.cfg.Server.Port),
		zap.String("address", s.httpServer.Addr))

	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}
