package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

// Server serves a Dataset over the same HTTP API the client consumes.
type Server struct {
	data   *Dataset
	router *mux.Router
}

// NewServer builds the router for data.
func NewServer(data *Dataset) *Server {
	s := &Server{data: data, router: mux.NewRouter().StrictSlash(true)}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(logRequests)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/search/", s.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/members/", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/members/{id:[0-9]+}/", s.handleMember).Methods(http.MethodGet)
	api.HandleFunc("/members/{id:[0-9]+}/interests/", s.handleInterests).Methods(http.MethodGet)
	api.HandleFunc("/stats/", s.handleStats).Methods(http.MethodGet)

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, data *Dataset) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewServer(data),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	result, ok := s.data.Search(query)
	switch {
	case !ok && strings.TrimSpace(query) == "":
		writeError(w, http.StatusBadRequest, "Search term is required")
	case !ok:
		writeError(w, http.StatusNotFound, "MP not found")
	default:
		writeJSON(w, http.StatusOK, result)
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ListFilter{
		Party:        q.Get("party"),
		Constituency: q.Get("constituency"),
		Page:         atoiDefault(q.Get("page"), 1),
		PageSize:     atoiDefault(q.Get("page_size"), 50),
	}
	members, total := s.data.List(filter)
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}

	type summary struct {
		MemberID     int64  `json:"member_id"`
		Name         string `json:"name"`
		Party        string `json:"party"`
		Constituency string `json:"constituency"`
		PortraitURL  string `json:"portrait_url"`
	}
	out := make([]summary, 0, len(members))
	for _, m := range members {
		out = append(out, summary{m.ID, m.Name, m.Party, m.Constituency, m.PortraitURL})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"members": out,
		"pagination": map[string]int{
			"page":        filter.Page,
			"page_size":   filter.PageSize,
			"total":       total,
			"total_pages": (total + filter.PageSize - 1) / filter.PageSize,
		},
	})
}

func (s *Server) handleMember(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookup(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Member not found")
		return
	}
	writeJSON(w, http.StatusOK, m.Profile)
}

func (s *Server) handleInterests(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookup(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Member not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"member_id":       m.Profile.ID,
		"name":            m.Profile.Name,
		"total_interests": len(m.Interests),
		"interests":       m.Interests,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.data.Stats())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"members": len(s.data.Members),
	})
}

func (s *Server) lookup(r *http.Request) (Member, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return Member{}, false
	}
	return s.data.Member(id)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs one line per request, tagged with the caller's
// X-Request-ID when present.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = "-"
		}
		log.Printf("%s %s %d %s (request %s)", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Millisecond), requestID)
	})
}

func atoiDefault(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
