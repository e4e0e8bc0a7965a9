package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"webtools/internal/config"
	"webtools/internal/domain/models"
	"webtools/internal/http/handlers/encode/transform"
	"webtools/internal/http/handlers/getdefault"
	"webtools/internal/http/handlers/middlewares/compressor"
	"webtools/internal/http/handlers/middlewares/logger"
	"webtools/internal/http/handlers/qr/download"
	"webtools/internal/http/handlers/qr/generate"
	"webtools/internal/http/handlers/qr/scan"
	"webtools/internal/http/handlers/system/ping"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type Transformer interface {
	Transform(req models.EncodeRequest) models.EncodeResult
}

type QRService interface {
	Generate(ctx context.Context, req models.QRRequest) models.QRResult
	Scan(ctx context.Context, r io.Reader) (string, error)
}

type Server struct {
	httpServer  *http.Server
	router      *mux.Router
	log         *zerolog.Logger
	transformer Transformer
	qrService   QRService
	cfg         config.Config
}

func NewServer(log *zerolog.Logger, cfg config.Config, transformer Transformer, qrService QRService) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if transformer == nil || qrService == nil {
		return nil, errors.New("services cannot be nil")
	}

	s := &Server{
		router:      mux.NewRouter(),
		cfg:         cfg,
		log:         log,
		transformer: transformer,
		qrService:   qrService,
	}

	// WriteTimeout учитывает задержку скана
	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10*time.Second + cfg.ScanDelay,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.Use(logger.MiddlewareLogging(s.log))
	s.router.Use(compressor.MiddlewareCompressing())

	maxBytes := s.cfg.MaxUploadBytes

	s.router.HandleFunc("/ping", ping.HandlerPing()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/encode", transform.HandlerTransform(s.transformer, maxBytes)).Methods(http.MethodPost)
	api.HandleFunc("/qr", generate.HandlerGenerate(s.qrService, maxBytes)).Methods(http.MethodPost)
	api.HandleFunc("/qr/download", download.HandlerDownload(s.qrService, s.log, maxBytes)).Methods(http.MethodPost)
	api.HandleFunc("/qr/scan", scan.HandlerScan(s.qrService, s.log, maxBytes)).Methods(http.MethodPost)

	// всё остальное - 400
	s.router.PathPrefix("/").HandlerFunc(getdefault.HandlerGetDefault())
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down server")
	return s.httpServer.Shutdown(ctx)
}

// Run запускает сервер и останавливает его при отмене ctx
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start(ctx)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
