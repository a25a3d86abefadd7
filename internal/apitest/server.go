// Package apitest provides an in-memory stand-in for the MedTracker API
// server. It serves canned envelopes for every route family the client
// consumes, records each request for assertions, and can be forced into
// an unauthorized state to exercise the 401 session handling.
package apitest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Request is one recorded inbound request.
type Request struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	RequestID     string
	Body          []byte
}

type override struct {
	status int
	body   interface{}
}

// Server wraps an httptest.Server running a gin router.
type Server struct {
	*httptest.Server

	mu                sync.Mutex
	requests          []Request
	overrides         map[string]override
	forceUnauthorized bool

	// FileContent is returned by the binary download/view/export
	// endpoints.
	FileContent []byte
}

// New starts the fake server. Callers must Close it.
func New() *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		overrides:   make(map[string]override),
		FileContent: []byte("%PDF-1.4 fake report data"),
	}

	engine := gin.New()
	engine.Use(s.record)
	s.routes(engine)
	s.Server = httptest.NewServer(engine)
	return s
}

// Requests returns a copy of everything recorded so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent recorded request.
func (s *Server) LastRequest() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

// RequestCount returns how many requests matched method and path.
func (s *Server) RequestCount(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

// ForceUnauthorized makes every authenticated route answer 401.
func (s *Server) ForceUnauthorized(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forceUnauthorized = v
}

// Override replaces the canned response for one method+path.
func (s *Server) Override(method, path string, status int, body interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+path] = override{status: status, body: body}
}

func (s *Server) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(strings.NewReader(string(body)))

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method:        c.Request.Method,
		Path:          c.Request.URL.Path,
		Authorization: c.GetHeader("Authorization"),
		ContentType:   c.GetHeader("Content-Type"),
		RequestID:     c.GetHeader("X-Request-ID"),
		Body:          body,
	})
	s.mu.Unlock()
	c.Next()
}

func (s *Server) auth(c *gin.Context) {
	s.mu.Lock()
	forced := s.forceUnauthorized
	s.mu.Unlock()

	header := c.GetHeader("Authorization")
	if forced || !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
	}
}

// reply serves an override when one is registered, otherwise the canned
// body.
func (s *Server) reply(c *gin.Context, body interface{}) {
	s.mu.Lock()
	o, ok := s.overrides[c.Request.Method+" "+c.FullPath()]
	s.mu.Unlock()
	if ok {
		c.JSON(o.status, o.body)
		return
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) binary(c *gin.Context) {
	c.Data(http.StatusOK, "application/octet-stream", s.FileContent)
}
