// Package codecommittest provides a local CodeCommit endpoint for tests.
//
// A Server answers awsJson1.1 requests. Responses are scripted per operation
// with Handle, Respond and RespondError; a Backend can be installed to serve
// repository, branch and file operations from in-memory git storage.
package codecommittest

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bravo68web/codecommit/internal/protocol"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/logger"
)

const operationKey = "codecommit.operation"

// Request is a request received by the Server.
type Request struct {
	Operation string
	Header    http.Header
	Body      []byte
}

// Decode decodes the request payload into v.
func (r *Request) Decode(v any) error {
	return protocol.Unmarshal(r.Body, v)
}

// Response is what a HandlerFunc answers with.
type Response struct {
	Status int
	Header http.Header
	// Body is encoded with the service codec unless it is a []byte.
	Body any
}

// OK returns a 200 response carrying v.
func OK(v any) Response {
	return Response{Status: http.StatusOK, Body: v}
}

// Fault returns a service error response of the given kind.
func Fault(status int, kind types.ErrorKind, message string) Response {
	return Response{Status: status, Body: protocol.EncodeError(string(kind), message)}
}

// HandlerFunc answers one operation.
type HandlerFunc func(req *Request) Response

// Server is a local CodeCommit endpoint.
type Server struct {
	// URL is the base endpoint, set once the server is serving.
	URL string

	http   *http.Server
	client *http.Client

	mu       sync.Mutex
	handlers map[string]HandlerFunc
	requests []*Request
	log      *logger.Logger
}

// TB is the part of testing.TB NewServer needs.
type TB interface {
	Helper()
	Cleanup(func())
	Fatalf(format string, args ...any)
}

// NewServer serves on a loopback port and stops when the test ends.
func NewServer(t TB) *Server {
	t.Helper()

	s := New()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("codecommittest: listen: %v", err)
	}
	s.Serve(ln)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// New returns a Server that is not serving yet. Call Serve to start it.
func New() *Server {
	s := &Server{
		handlers: make(map[string]HandlerFunc),
		client:   &http.Client{Timeout: 30 * time.Second},
		log:      logger.Get().WithFields(logger.Component("codecommittest")),
	}
	s.http = &http.Server{
		Handler:           s.engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Serve accepts calls on ln in the background until Close.
func (s *Server) Serve(ln net.Listener) {
	s.URL = "http://" + ln.Addr().String()
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("serve failed", logger.Endpoint(s.URL), logger.Error(err))
		}
	}()
}

// Close stops the server and drops open connections.
func (s *Server) Close() error {
	return s.http.Close()
}

// Client returns an HTTP client suitable for calling the server directly.
func (s *Server) Client() *http.Client {
	return s.client
}

func (s *Server) engine() http.Handler {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(s.recovery(), s.requireTarget(), s.logCalls())
	r.POST("/", s.dispatch)
	return r
}

// Handle installs fn for operation, replacing any earlier handler.
func (s *Server) Handle(operation string, fn HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[operation] = fn
}

// Respond makes operation answer with status and body.
func (s *Server) Respond(operation string, status int, body any) {
	s.Handle(operation, func(*Request) Response {
		return Response{Status: status, Body: body}
	})
}

// RespondError makes operation fail with the given discriminator and message.
func (s *Server) RespondError(operation string, status int, discriminator, message string) {
	s.Respond(operation, status, protocol.EncodeError(discriminator, message))
}

// Requests returns the requests received so far, oldest first.
func (s *Server) Requests() []*Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request for operation.
func (s *Server) LastRequest(operation string) (*Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Operation == operation {
			return s.requests[i], true
		}
	}
	return nil, false
}

func (s *Server) handler(operation string) HandlerFunc {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handlers[operation]
}

// requireTarget rejects requests that are not awsJson1.1 calls of this service.
func (s *Server) requireTarget() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ct := c.GetHeader("Content-Type"); ct != protocol.ContentType {
			s.write(c, Fault(http.StatusBadRequest, "SerializationException", "unexpected content type "+ct))
			c.Abort()
			return
		}
		op, ok := protocol.OperationFromTarget(c.GetHeader(protocol.HeaderTarget))
		if !ok {
			s.write(c, Fault(http.StatusBadRequest, "UnknownOperationException", "missing or foreign X-Amz-Target"))
			c.Abort()
			return
		}
		c.Set(operationKey, op)
		c.Next()
	}
}

// logCalls logs each dispatched call at debug level. Signing headers are
// never logged.
func (s *Server) logCalls() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []logger.Field{
			logger.Operation(c.GetString(operationKey)),
			logger.StatusCode(c.Writer.Status()),
			logger.Latency(time.Since(start)),
			logger.RequestID(c.Writer.Header().Get(protocol.HeaderRequestID)),
			logger.BodySize(int(c.Request.ContentLength)),
		}
		if _, signed := c.Request.Header["Authorization"]; signed {
			fields = append(fields, logger.String("auth", "sigv4"))
		}
		s.log.Debug("call served", fields...)
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				s.log.Error("handler panicked",
					logger.Operation(c.GetString(operationKey)),
					logger.String("panic", fmt.Sprint(err)),
					logger.String("stack", string(debug.Stack())),
				)
				s.write(c, Fault(http.StatusInternalServerError, "InternalFailure", "handler panicked"))
				c.Abort()
			}
		}()
		c.Next()
	}
}

func (s *Server) dispatch(c *gin.Context) {
	op := c.GetString(operationKey)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		s.write(c, Fault(http.StatusBadRequest, "SerializationException", err.Error()))
		return
	}

	req := &Request{Operation: op, Header: c.Request.Header.Clone(), Body: body}
	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	h := s.handler(op)
	if h == nil {
		s.write(c, Fault(http.StatusBadRequest, "UnknownOperationException", "operation "+op+" is not handled"))
		return
	}
	s.write(c, h(req))
}

func (s *Server) write(c *gin.Context, resp Response) {
	for k, vs := range resp.Header {
		for _, v := range vs {
			c.Writer.Header().Add(k, v)
		}
	}
	if c.Writer.Header().Get(protocol.HeaderRequestID) == "" {
		c.Header(protocol.HeaderRequestID, uuid.NewString())
	}

	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}

	var payload []byte
	switch b := resp.Body.(type) {
	case nil:
		payload = []byte("{}")
	case []byte:
		payload = b
	case string:
		payload = []byte(b)
	default:
		data, err := protocol.Marshal(b)
		if err != nil {
			status = http.StatusInternalServerError
			data = protocol.EncodeError("InternalFailure", err.Error())
		}
		payload = data
	}

	c.Data(status, protocol.ContentType, payload)
}
