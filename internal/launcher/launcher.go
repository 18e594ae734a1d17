// Package launcher serves a directory over HTTP until its context ends.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/f4ah6o/meowmi-server/internal/banner"
	"github.com/f4ah6o/meowmi-server/internal/browser"
	"github.com/f4ah6o/meowmi-server/internal/profile"
	"github.com/f4ah6o/meowmi-server/internal/root"
)

// DefaultPort is the port both launcher binaries bind.
const DefaultPort = 8000

// ShutdownTimeout bounds how long in-flight requests may delay shutdown.
const ShutdownTimeout = 5 * time.Second

var (
	ErrAlreadyListening = errors.New("launcher: already listening")
	ErrNotListening     = errors.New("launcher: Listen has not been called")
)

// Config is everything a Launcher needs. Zero Stdout, Logger and Opener
// fall back to os.Stdout, a discarding logger and the system browser.
type Config struct {
	// Root is the directory served at "/".
	Root string
	// Port is bound on all interfaces. Zero picks a free port.
	Port    int
	Profile profile.Profile
	Stdout  io.Writer
	Logger  *slog.Logger
	Opener  browser.Opener
}

// Launcher owns the listening socket and the HTTP server for one run.
type Launcher struct {
	cfg  Config
	ln   net.Listener
	task *browser.Task
}

// New returns a Launcher for cfg. Nothing is bound until Listen.
func New(cfg Config) *Launcher {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Opener == nil {
		cfg.Opener = browser.System{}
	}
	return &Launcher{cfg: cfg}
}

// Run binds the port and serves until ctx is done.
func (l *Launcher) Run(ctx context.Context) error {
	if err := l.Listen(); err != nil {
		return err
	}
	return l.Serve(ctx)
}

// Listen checks the root directory and binds the TCP port. It fails fast,
// without retrying or picking another port, when the address is in use.
func (l *Launcher) Listen() error {
	if l.ln != nil {
		return ErrAlreadyListening
	}

	dir, err := root.Check(l.cfg.Root)
	if err != nil {
		return fmt.Errorf("launcher: %w", err)
	}
	l.cfg.Root = dir

	addr := fmt.Sprintf(":%d", l.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("launcher: listen %s: %w", addr, err)
	}
	l.ln = ln
	l.cfg.Logger.Info("listening", "addr", ln.Addr().String(), "root", dir)
	return nil
}

// Addr is the bound address, nil before Listen.
func (l *Launcher) Addr() net.Addr {
	if l.ln == nil {
		return nil
	}
	return l.ln.Addr()
}

// URL is the address users open in a browser.
func (l *Launcher) URL() string {
	port := l.cfg.Port
	if tcp, ok := l.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}
	return fmt.Sprintf("http://localhost:%d", port)
}

// BrowserTask is the pending browser open, nil when the profile has none or
// Serve has not started.
func (l *Launcher) BrowserTask() *browser.Task {
	return l.task
}

// Serve prints the banner, arms the browser open and serves requests. When
// ctx is done it cancels the pending browser open, shuts the server down,
// prints the stop message and returns nil.
func (l *Launcher) Serve(ctx context.Context) error {
	if l.ln == nil {
		return ErrNotListening
	}
	cfg := l.cfg
	url := l.URL()

	srv := &http.Server{
		Handler:  Handler(cfg.Root, cfg.Logger),
		ErrorLog: slog.NewLogLogger(cfg.Logger.Handler(), slog.LevelWarn),
	}

	if err := banner.Startup(cfg.Stdout, cfg.Profile, url, banner.PageTitle(cfg.Root)); err != nil {
		l.ln.Close()
		return fmt.Errorf("launcher: write banner: %w", err)
	}

	if cfg.Profile.OpenBrowser {
		l.task = browser.Schedule(cfg.Profile.OpenDelay, func() {
			if err := cfg.Opener.Open(url); err != nil {
				cfg.Logger.Warn("open browser", "url", url, "error", err)
			}
		})
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(l.ln) }()

	select {
	case err := <-errCh:
		l.task.Cancel()
		return fmt.Errorf("launcher: serve: %w", err)
	case <-ctx.Done():
	}

	l.task.Cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		cfg.Logger.Warn("shutdown incomplete, closing connections", "error", err)
		srv.Close()
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		cfg.Logger.Warn("serve", "error", err)
	}
	cfg.Logger.Info("shutdown", "addr", l.ln.Addr().String())

	if err := banner.Shutdown(cfg.Stdout, cfg.Profile); err != nil {
		return fmt.Errorf("launcher: write stop message: %w", err)
	}
	return nil
}

// Handler serves root as static files and logs every request.
func Handler(root string, logger *slog.Logger) http.Handler {
	fs := http.FileServer(http.Dir(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		fs.ServeHTTP(w, r)
	})
}
