// Package fishtexttest provides an in-process fake of the fish-text service
// for use in tests and examples.
//
//	srv := fishtexttest.NewServer()
//	defer srv.Close()
//
//	c, err := fishtext.NewJSON(fishtext.WithEndpoint(srv.Endpoint()))
//
// The fake honours the service's query parameters and per-type limits, and
// can be scripted with canned answers via [Server.Respond].
package fishtexttest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Path is the route the fake serves.
const Path = "/get"

// Limits holds the maximum number of units per call for each text type.
var Limits = map[string]int{
	"sentence":  500,
	"paragraph": 100,
	"title":     500,
}

// Service error codes the fake emits.
const (
	codeTooManyContent = 11
	codeCallLimit      = 21
)

var validate = validator.New()

// Body is the JSON answer of the service. A nil ErrorCode is encoded as null.
type Body struct {
	Status    string  `json:"status"`
	Text      *string `json:"text"`
	ErrorCode *int    `json:"errorCode"`
}

// ErrorBody builds the answer the service gives for code.
func ErrorBody(code int) Body {
	return Body{Status: "error", ErrorCode: &code}
}

// TextBody builds a successful answer carrying text.
func TextBody(text string) Body {
	return Body{Status: "success", Text: &text}
}

type query struct {
	Format string `validate:"required,oneof=json html"`
	Number int    `validate:"min=1"`
	Type   string `validate:"required,oneof=sentence paragraph title"`
}

type canned struct {
	status int
	body   any
}

// Server is a fake fish-text service listening on a loopback address.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []url.Values
	canned    []canned
	callLimit int
	logger    *slog.Logger
}

// Option configures a [Server].
type Option func(*Server)

// WithCallLimit makes every call after the first n answer errorCode 21.
func WithCallLimit(n int) Option {
	return func(s *Server) {
		s.callLimit = n
	}
}

// WithLogger injects a logger the fake reports each request to.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer starts a fake service. Callers must Close it.
func NewServer(opts ...Option) *Server {
	s := Server{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+Path, s.handle)
	s.Server = httptest.NewServer(mux)

	return &s
}

// Endpoint is the URL clients should be configured with.
func (s *Server) Endpoint() string {
	return s.URL + Path
}

// Respond queues body as the answer to the next call, bypassing the
// emulated service logic.
func (s *Server) Respond(body any) {
	s.RespondStatus(http.StatusOK, body)
}

// RespondStatus queues body with an explicit HTTP status. A string body is
// written verbatim.
func (s *Server) RespondStatus(status int, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.canned = append(s.canned, canned{status: status, body: body})
}

// Requests returns the query of every call received so far.
func (s *Server) Requests() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]url.Values, len(s.requests))
	copy(out, s.requests)

	return out
}

// Calls returns the number of calls received so far.
func (s *Server) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.requests)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.URL.Query())
	calls := len(s.requests)
	var next *canned
	if len(s.canned) > 0 {
		next = &s.canned[0]
		s.canned = s.canned[1:]
	}
	s.mu.Unlock()

	s.logger.Info("fishtexttest request", "query", r.URL.RawQuery, "call", calls)

	if next != nil {
		respond(w, next.status, next.body)
		return
	}

	q, err := parseQuery(r.URL.Query())
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if s.callLimit > 0 && calls > s.callLimit {
		respond(w, http.StatusOK, ErrorBody(codeCallLimit))
		return
	}

	if q.Number > Limits[q.Type] {
		respond(w, http.StatusOK, ErrorBody(codeTooManyContent))
		return
	}

	text := Generate(q.Type, q.Number)
	if q.Format == "html" {
		respond(w, http.StatusOK, toHTML(text))
		return
	}

	respond(w, http.StatusOK, TextBody(text))
}

// parseQuery applies the service defaults to missing parameters and
// validates the result.
func parseQuery(v url.Values) (query, error) {
	q := query{
		Format: "json",
		Number: 1,
		Type:   "sentence",
	}

	if val := v.Get("format"); val != "" {
		q.Format = val
	}
	if val := v.Get("type"); val != "" {
		q.Type = val
	}
	if val := v.Get("number"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return query{}, fmt.Errorf("query param[number] must be integer: %w", err)
		}
		q.Number = n
	}

	if err := validate.Struct(q); err != nil {
		return query{}, err
	}

	return q, nil
}

func respond(w http.ResponseWriter, status int, body any) {
	if s, ok := body.(string); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(s))
		return
	}

	data, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func toHTML(text string) string {
	var b strings.Builder
	for _, p := range strings.Split(text, "\n\n") {
		b.WriteString("<p>")
		b.WriteString(p)
		b.WriteString("</p>")
	}

	return b.String()
}
