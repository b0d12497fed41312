package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/GachaLab_Go/internal/catalog"
	"github.com/osse101/GachaLab_Go/internal/database"
	"github.com/osse101/GachaLab_Go/internal/gacha"
	"github.com/osse101/GachaLab_Go/internal/handler"
	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/metrics"
	"github.com/osse101/GachaLab_Go/internal/points"
	"github.com/osse101/GachaLab_Go/internal/stats"
	"github.com/osse101/GachaLab_Go/internal/user"
)

// Options carries the HTTP-level settings
type Options struct {
	Port           int
	AdminToken     string
	TrustedProxies []string
	Version        string
	TimeZone       *time.Location
}

// Services are the application services exposed over HTTP
type Services struct {
	DB      database.Pool
	Users   user.Service
	Points  points.Service
	Gacha   gacha.Service
	Catalog catalog.Service
	Stats   stats.Service
	Line    handler.LineWebhook
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	tracker := NewClientTracker()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, tracker))
	r.Use(RequestSizeLimitMiddleware(maxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Operational routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(handler.PingCheck("database", svc.DB)))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterUser(svc.Users))
			r.Get("/{userId}/stats", handler.HandleGetUserStats(svc.Users))
			r.Get("/{userId}/items", handler.HandleGetUserItems(svc.Users))
			r.Get("/{userId}/gacha-histories", handler.HandleGetGachaHistories(svc.Users))
		})

		r.Route("/points", func(r chi.Router) {
			r.Get("/balance", handler.HandleGetBalance(svc.Points))
			r.Post("/purchase", handler.HandlePurchase(svc.Points))
			r.Post("/confirm", handler.HandleConfirm(svc.Points))
			r.Post("/webhook", handler.HandlePaymentWebhook(svc.Points))
		})

		r.Route("/gacha", func(r chi.Router) {
			r.Get("/types", handler.HandleListGachaTypes(svc.Gacha))
			r.Post("/draw", handler.HandleDraw(svc.Gacha))
		})

		r.Post("/webhook/line", handler.HandleLineWebhook(svc.Line))

		catalogHandler := handler.NewAdminCatalogHandler(svc.Catalog)
		adminUserHandler := handler.NewAdminUserHandler(svc.Users, svc.Points)
		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(opts.AdminToken, opts.TrustedProxies, tracker))

			r.Get("/gacha-types", catalogHandler.HandleListGachaTypes)
			r.Post("/gacha-types", catalogHandler.HandleSaveGachaType)

			r.Route("/items", func(r chi.Router) {
				r.Get("/", catalogHandler.HandleListItems)
				r.Post("/", catalogHandler.HandleCreateItem)
				r.Get("/{id}", catalogHandler.HandleGetItem)
				r.Put("/{id}", catalogHandler.HandleUpdateItem)
				r.Delete("/{id}", catalogHandler.HandleDeleteItem)
			})

			r.Post("/simulator", handler.HandleSimulate(svc.Gacha))
			r.Post("/cache/clear", handler.HandleClearGachaCache(svc.Gacha))
			r.Get("/statistics", handler.HandleGetStatistics(svc.Stats, opts.TimeZone))

			r.Route("/users", func(r chi.Router) {
				r.Get("/", adminUserHandler.HandleListUsers)
				r.Get("/{userId}", adminUserHandler.HandleGetUser)
				r.Post("/{userId}/points", adminUserHandler.HandleAdjustPoints)
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, p := range quietPaths {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, logger.GetRequestID(ctx))
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", sanitizeHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func sanitizeHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		out[k] = v
		for _, s := range sensitiveHeaders {
			if strings.EqualFold(k, s) {
				out[k] = []string{RedactedValue}
				break
			}
		}
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
