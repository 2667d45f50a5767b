// Package server exposes the chatbot over HTTP: a render surface that
// submits raw text and displays returned text, plus session lifecycle
// endpoints. The policy decisions all live in internal/chat; this layer only
// maps requests onto sessions and serializes calls per session.
package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sahla-io/dukkan/internal/catalog"
	"github.com/sahla-io/dukkan/internal/chat"
	"github.com/sahla-io/dukkan/internal/policy"
	"github.com/sahla-io/dukkan/internal/session"
)

const requestTimeout = 90 * time.Second

// Server holds the HTTP dependencies and the in-memory session registry.
// Sessions live for the lifetime of the process only.
type Server struct {
	mux         *chi.Mux
	chatRouter  *chat.Router
	store       *catalog.Store
	defaultRole policy.Role
	apiKeys     map[string]string
	startTime   time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// sessionEntry pairs a session with its own lock so concurrent requests for
// the same conversation are serialized, as the session contract requires.
type sessionEntry struct {
	mu   sync.Mutex
	sess *session.Session
}

// Option configures the Server.
type Option func(*Server)

// WithDefaultRole sets the role assumed when a request declares none.
func WithDefaultRole(r policy.Role) Option {
	return func(s *Server) { s.defaultRole = r }
}

// WithAPIKeys enables bearer auth; the map is key → client label. Empty or
// nil leaves the API open (single-operator deployments).
func WithAPIKeys(keys map[string]string) Option {
	return func(s *Server) { s.apiKeys = keys }
}

// New creates the HTTP server over a policy router and catalog store.
func New(chatRouter *chat.Router, store *catalog.Store, opts ...Option) *Server {
	s := &Server{
		chatRouter:  chatRouter,
		store:       store,
		defaultRole: policy.RoleCustomer,
		startTime:   time.Now(),
		sessions:    make(map[string]*sessionEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.Timeout(requestTimeout))

	mux.Get("/healthz", s.handleHealth)

	mux.Group(func(r chi.Router) {
		if len(s.apiKeys) > 0 {
			r.Use(AuthMiddleware(s.apiKeys))
		}
		r.Post("/v1/chat", s.handleChat)
		r.Get("/v1/sessions/{sessionID}", s.handleSessionInfo)
		r.Post("/v1/sessions/{sessionID}/reset", s.handleSessionReset)
	})

	s.mux = mux
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// session returns the entry for id, or nil when unknown.
func (s *Server) session(id string) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[id]
}

// createSession registers a new session with the given role.
func (s *Server) createSession(role policy.Role) *sessionEntry {
	entry := &sessionEntry{sess: session.New(role)}
	s.mu.Lock()
	s.sessions[entry.sess.ID()] = entry
	s.mu.Unlock()
	return entry
}
