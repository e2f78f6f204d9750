package httpadapter

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"backstage/internal/api"
	"backstage/internal/ports"
)

// Server exposes the insight dashboard and the sync license lifecycle.
type Server struct {
	insights  ports.Analyzer
	licensing ports.Licensing
	roles     ports.RoleRepository
	secret    []byte
	logger    zerolog.Logger
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(insights ports.Analyzer, licensing ports.Licensing, roles ports.RoleRepository, jwtSecret string, logger zerolog.Logger) *Server {
	return &Server{
		insights:  insights,
		licensing: licensing,
		roles:     roles,
		secret:    []byte(jwtSecret),
		logger:    logger,
	}
}

// Routes returns a chi.Router serving every endpoint of api/openapi.yaml.
// Operations declaring bearerAuth go through Authenticate.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Logger(&s.logger))
	r.Use(Localize)
	r.Use(middleware.Recoverer)

	strict := api.NewStrictHandlerWithOptions(s, nil, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  badRequest,
		ResponseErrorHandlerFunc: writeError,
	})
	api.HandlerWithOptions(strict, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{s.Authenticate},
		ErrorHandlerFunc: badRequest,
	})
	return r
}
