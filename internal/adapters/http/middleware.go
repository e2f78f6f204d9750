package httpadapter

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"backstage/internal/api"
	"backstage/internal/domain"
)

// Logger attaches a request scoped logger to the request context.
func Logger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			reqLogger := logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("remote_ip", req.RemoteAddr).
				Str("request_id", middleware.GetReqID(req.Context())).
				Logger()

			ctx := reqLogger.WithContext(req.Context())
			req = req.WithContext(ctx)

			next.ServeHTTP(w, req)
		})
	}
}

type langKey struct{}

// Localize resolves Accept-Language once so handlers only need the context
// to render messages.
func Localize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tags, _, _ := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
		_, idx, _ := matcher.Match(tags...)
		ctx := context.WithValue(r.Context(), langKey{}, supported[idx])
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type sessionKey struct{}

func withSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session built by Authenticate. Requests that did
// not pass through it get an anonymous viewer.
func SessionFrom(ctx context.Context) domain.Session {
	if s, ok := ctx.Value(sessionKey{}).(domain.Session); ok {
		return s
	}
	return domain.NewSession("", nil)
}

var errUnauthorized = errors.New("missing or invalid bearer token")

// Authenticate resolves the bearer token to a user and loads their roles
// once for the whole request. Operations without bearerAuth scopes in the
// context pass through untouched.
func (s *Server) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if _, secured := ctx.Value(api.BearerAuthScopes).([]string); !secured {
			next.ServeHTTP(w, r)
			return
		}
		userID, err := s.subject(r.Header.Get("Authorization"))
		if err != nil {
			zerolog.Ctx(ctx).Debug().Err(err).Msg("rejected token")
			writeError(w, r, errUnauthorized)
			return
		}
		roles, err := s.roles.RolesFor(ctx, userID)
		if err != nil {
			writeError(w, r, domain.Storage("load roles", err))
			return
		}
		sess := domain.NewSession(userID, roles)

		l := zerolog.Ctx(ctx).With().Str("user_id", userID).Str("role", string(sess.PrimaryRole)).Logger()
		ctx = l.WithContext(withSession(ctx, sess))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) subject(header string) (string, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", errUnauthorized
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method " + t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errUnauthorized
	}
	return claims.Subject, nil
}
