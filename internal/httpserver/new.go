package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"parts-support-chat/config"
	"parts-support-chat/internal/catalog"
	"parts-support-chat/pkg/llmprovider"
	"parts-support-chat/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Chat domain dependencies
	store catalog.Store
	llm   *llmprovider.Manager
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AppConfig   *config.Config

	Store catalog.Store
	LLM   *llmprovider.Manager
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		cfg:         cfg.AppConfig,
		store:       cfg.Store,
		llm:         cfg.LLM,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.store == nil {
		return errors.New("catalog store is required")
	}
	if srv.llm == nil {
		return errors.New("llm manager is required")
	}
	return nil
}
