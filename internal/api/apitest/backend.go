// Package apitest provides an in-memory licensing backend for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/rshade/licensedesk/internal/customers"
)

// BasePath is the path prefix the fake backend serves under.
const BasePath = "/api"

// Request is one request observed by the backend.
type Request struct {
	Method    string
	Path      string
	Query     string
	RequestID string
}

// Backend is a fake licensing backend routed with chi.
type Backend struct {
	Server *httptest.Server

	mu          sync.Mutex
	token       string
	rows        []customers.Row
	failDelete  map[string]string
	failList    string
	apiVersion  string
	requests    []Request
	ignoreQuery bool
}

// NewBackend starts a backend that accepts token and serves rows.
// The server is closed when the test ends.
func NewBackend(t interface{ Cleanup(func()) }, token string, rows []customers.Row) *Backend {
	b := &Backend{
		token:      token,
		rows:       append([]customers.Row(nil), rows...),
		failDelete: make(map[string]string),
	}

	r := chi.NewRouter()
	r.Route(BasePath, func(r chi.Router) {
		r.Use(b.record, b.auth)
		r.Get("/customers", b.listCustomers)
		r.Delete("/customers/{id}", b.deleteCustomer)
	})

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the base URL clients should use.
func (b *Backend) URL() string {
	return b.Server.URL + BasePath
}

// FailDelete makes DELETE for id answer success:false with message.
func (b *Backend) FailDelete(id, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failDelete[id] = message
}

// FailList makes GET /customers answer HTTP 500 with message; "" restores normal behaviour.
func (b *Backend) FailList(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failList = message
}

// SetAPIVersion makes every response carry X-API-Version.
func (b *Backend) SetAPIVersion(v string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.apiVersion = v
}

// IgnoreQuery makes GET /customers return every row regardless of filters,
// like a backend that does not implement server-side filtering.
func (b *Backend) IgnoreQuery() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ignoreQuery = true
}

// Rows returns the rows still present.
func (b *Backend) Rows() []customers.Row {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]customers.Row(nil), b.rows...)
}

// Requests returns every request seen so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.RawQuery,
			RequestID: r.Header.Get("X-Request-ID"),
		})
		if b.apiVersion != "" {
			w.Header().Set("X-API-Version", b.apiVersion)
		}
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if got == "" || got != b.token {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "invalid token"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) listCustomers(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failList != "" {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "message": b.failList})
		return
	}

	out := append([]customers.Row(nil), b.rows...)
	if !b.ignoreQuery {
		q := r.URL.Query()
		filter := customers.FilterState{
			Status:    customers.StatusAll,
			ProductID: q.Get("product_id"),
			Search:    q.Get("search"),
		}
		if s := q.Get("status"); s != "" {
			filter.Status = customers.Status(s)
		}
		out = filter.Apply(out)
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "customers": out})
}

func (b *Backend) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"success": false, "message": "bad id"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if msg, ok := b.failDelete[id]; ok {
		writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": msg})
		return
	}

	for i, row := range b.rows {
		if row.ID == id {
			b.rows = append(b.rows[:i], b.rows[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{"success": true})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "customer not found"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
