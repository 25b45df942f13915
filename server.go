package skew

import (
	"context"
	"errors"
	"net"
	"time"

	fiber "github.com/gofiber/fiber/v3"
	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"

	"github.com/hazelutf8/approx-pearson-skew/internal/sentinel"
)

// HTTPOption configures the HTTP facade.
type HTTPOption func(*HTTPServer)

// HTTPServer exposes a Service over HTTP: POST /compute runs a skew
// computation over a JSON sample array, GET /stats reports the engine's
// collected statistics.
type HTTPServer struct {
	addr         string
	app          *fiber.App
	readTimeout  time.Duration
	writeTimeout time.Duration
	authFunc     func(fiber.Ctx) error
	ln           net.Listener
	started      bool
}

// WithHTTPAuth sets an auth function (return error to block).
func WithHTTPAuth(fn func(fiber.Ctx) error) HTTPOption {
	return func(s *HTTPServer) { s.authFunc = fn }
}

// WithHTTPReadTimeout sets read timeout.
func WithHTTPReadTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPServer) { s.readTimeout = d }
}

// WithHTTPWriteTimeout sets write timeout.
func WithHTTPWriteTimeout(d time.Duration) HTTPOption {
	return func(s *HTTPServer) { s.writeTimeout = d }
}

const (
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 5 * time.Second
)

// NewHTTPServer builds an HTTP server holder (lazy start).
func NewHTTPServer(addr string, opts ...HTTPOption) *HTTPServer {
	app := fiber.New(fiber.Config{
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})

	srv := &HTTPServer{
		addr:         addr,
		app:          app,
		readTimeout:  defaultReadTimeout,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts { // apply options
		opt(srv)
	}

	return srv
}

// computeRequest is the body of POST /compute.
type computeRequest struct {
	Samples []float64 `json:"samples"`
}

// computeResponse is the result document returned by POST /compute.
type computeResponse struct {
	Skew   float64 `json:"skew"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
	Count  int     `json:"count"`
}

// Start launches the listener (idempotent). The caller provides the service
// the handlers delegate to.
func (s *HTTPServer) Start(ctx context.Context, svc Service) error {
	if s.started { // idempotent
		return nil
	}

	s.mountRoutes(ctx, svc)

	lc := net.ListenConfig{}

	ln, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return ewrap.Wrap(err, "http listen")
	}

	s.ln = ln

	go func() { // serve in background
		serveErr := s.app.Listener(ln)
		if serveErr != nil { // facade is optional; surface through logs upstream if needed
			_ = serveErr
		}
	}()

	s.started = true

	return nil
}

// Address returns the bound address (useful when passing ":0" for an ephemeral
// port). Empty if not started yet.
func (s *HTTPServer) Address() string {
	if s.ln == nil {
		return ""
	}

	return s.ln.Addr().String()
}

// Shutdown stops the server, honoring the context deadline.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if !s.started {
		return nil
	}

	ch := make(chan error, 1)

	go func() {
		ch <- s.app.Shutdown()
	}()

	select {
	case <-ctx.Done():
		return sentinel.ErrHTTPShutdownTimeout
	case err := <-ch:
		return err
	}
}

// mountRoutes registers endpoints onto the Fiber app.
func (s *HTTPServer) mountRoutes(ctx context.Context, svc Service) {
	useAuth := s.wrapAuth

	s.app.Get("/healthz", useAuth(func(fiberCtx fiber.Ctx) error { return fiberCtx.SendString("ok") }))
	s.app.Get("/stats", useAuth(func(fiberCtx fiber.Ctx) error { return fiberCtx.JSON(svc.GetStats()) }))

	s.app.Post("/compute", useAuth(func(fiberCtx fiber.Ctx) error {
		var req computeRequest

		err := json.Unmarshal(fiberCtx.Body(), &req)
		if err != nil {
			return fiberCtx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed body"})
		}

		resp, err := s.compute(ctx, svc, req.Samples)
		if err != nil {
			return s.fail(fiberCtx, err)
		}

		return fiberCtx.JSON(resp)
	}))
}

// compute assembles the full result document from the service.
func (s *HTTPServer) compute(ctx context.Context, svc Service, samples []float64) (*computeResponse, error) {
	mean, err := svc.Mean(ctx, samples)
	if err != nil {
		return nil, err
	}

	median, err := svc.Median(ctx, samples)
	if err != nil {
		return nil, err
	}

	stdDev, err := svc.StdDev(ctx, samples)
	if err != nil {
		return nil, err
	}

	value, err := FromMoments(mean, median, stdDev)
	if err != nil {
		return nil, err
	}

	return &computeResponse{
		Skew:   value,
		Mean:   mean,
		Median: median,
		StdDev: stdDev,
		Count:  len(samples),
	}, nil
}

// fail maps domain errors onto HTTP statuses.
func (s *HTTPServer) fail(fiberCtx fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if errors.Is(err, sentinel.ErrEmptyInput) || errors.Is(err, sentinel.ErrZeroVariance) {
		status = fiber.StatusUnprocessableEntity
	}

	return fiberCtx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// wrapAuth returns an auth-wrapped handler if authFunc provided.
func (s *HTTPServer) wrapAuth(handler fiber.Handler) fiber.Handler {
	if s.authFunc == nil {
		return handler
	}

	return func(fiberCtx fiber.Ctx) error {
		authErr := s.authFunc(fiberCtx)
		if authErr != nil {
			return authErr
		}

		return handler(fiberCtx)
	}
}
