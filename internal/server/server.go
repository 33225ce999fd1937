package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
)

// Server serves one directory tree over plain HTTP.
type Server struct {
	root    string
	addr    string
	out     io.Writer
	logger  *slog.Logger
	handler http.Handler
}

// New builds a Server from cfg. The content-type table and filesystem are
// fixed here and shared read-only by every request.
func New(cfg Config) (*Server, error) {
	fsys, err := cfg.filesystem()
	if err != nil {
		return nil, err
	}

	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		root:    cfg.Root,
		addr:    addr,
		out:     out,
		logger:  logger,
		handler: NewHandler(fsys, NewContentTypes(cfg.ContentTypes)),
	}, nil
}

// Handler returns the request handler, for use without a listener.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe binds the configured address and serves until the
// listener fails or ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := Listen(ctx, s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve announces the address on the configured output and accepts
// connections on ln, one goroutine per connection. Cancelling ctx closes
// the listener and every open connection immediately.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{
		Handler:     s.handler,
		ErrorLog:    slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			if err := httpServer.Close(); err != nil {
				s.logger.Warn("Failed to close HTTP server", "error", err)
			}
		case <-stop:
		}
	}()

	_, _ = fmt.Fprintf(s.out, "🌍 Serving %s on %s\n", s.root, displayURL(ln.Addr()))

	err := httpServer.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// displayURL turns a listener address into something clickable. Unspecified
// hosts are shown as localhost.
func displayURL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
