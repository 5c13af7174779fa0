package transportcatalogue

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/transport-catalogue/config"
)

const requestIDHeader = "X-Request-ID"

type ctxKey struct{}

var (
	server *Server
)

// Server exposes an engine over HTTP
type Server struct {
	engine *Engine
	cache  *ResponseCache
	http   *http.Server
}

// NewServer creates a server for a loaded engine
func NewServer(engine *Engine) *Server {
	return &Server{engine: engine, cache: NewResponseCache()}
}

// Routes returns the HTTP handler with all API routes
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.Config.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{requestIDHeader},
	}))
	r.Use(requestID)

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/buses/{name}", s.handleBus)
	r.Get("/api/stops/{name}", s.handleStop)
	r.Get("/api/route", s.handleRoute)
	r.Get("/api/map", s.handleMap)
	r.Post("/api/stat", s.handleStat)
	return r
}

// requestID tags each request with an X-Request-ID and logs it
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
		log.Printf("%s %s %s %s", id, r.Method, r.URL.RequestURI(), time.Since(start))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// StartServer starts serving engine on the configured port
func StartServer(engine *Engine) {
	server = NewServer(engine)
	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	server.http = &http.Server{
		Addr:              addr,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", addr)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM and stops the server
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	timeout := time.Duration(config.Config.Server.ShutdownTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if server != nil && server.http != nil {
		if err := server.http.Shutdown(ctx); err != nil {
			log.Printf("server shutdown error: %v", err)
		} else {
			hits, misses := server.cache.Stats()
			log.Printf("server shut down successfully (cache hits=%d misses=%d)", hits, misses)
		}
	}
}
