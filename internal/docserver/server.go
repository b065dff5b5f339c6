// Package docserver serves the static API documentation and a liveness
// route for it.
package docserver

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/shhac/featuredesk/internal/domain"
)

const (
	// DefaultPort is the fixed documentation port.
	DefaultPort = 5002

	// DefaultRoot is the document root. A relative root is looked up in the
	// working directory first and then next to the executable.
	DefaultRoot = "docs/public"

	// HealthPath is the doc server's own liveness route.
	HealthPath = "/api/health"

	// HealthMessage is reported by the liveness route.
	HealthMessage = "Documentation server is running"

	indexFile = "index.html"
)

// ErrMissingIndex is returned by Run when the document root has no index.html.
var ErrMissingIndex = errors.New("document root has no index.html")

// Server is the common behaviour of the documentation server.
type Server interface {
	Run() error
	Shutdown() error
}

// Config holds the listen address and document root.
type Config struct {
	Addr string
	Root string
}

// DefaultConfig listens on every interface at DefaultPort and serves DefaultRoot.
func DefaultConfig() Config {
	return Config{
		Addr: fmt.Sprintf(":%d", DefaultPort),
		Root: DefaultRoot,
	}
}

// DocServer serves the documentation site.
type DocServer struct {
	config Config
	logger *slog.Logger
	router *fiber.App
	now    func() time.Time
}

// New creates a DocServer with all routes registered.
func New(cfg Config, logger *slog.Logger) *DocServer {
	if cfg.Addr == "" {
		cfg.Addr = fmt.Sprintf(":%d", DefaultPort)
	}
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	cfg.Root = resolveRoot(cfg.Root, executableDir())

	r := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		EnablePrintRoutes:     false,
		ReadTimeout:           60 * time.Second,
		WriteTimeout:          60 * time.Second,
		IdleTimeout:           120 * time.Second,
	})

	s := &DocServer{
		config: cfg,
		logger: logger,
		router: r,
		now:    time.Now,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *DocServer) setupMiddleware() {
	s.router.Use(recover.New())
	s.router.Use(cors.New())
	s.router.Use(s.requestLogger)
}

func (s *DocServer) setupRoutes() {
	s.router.Get(HealthPath, s.handleHealth)
	s.router.Get("/", s.handleIndex)
	s.router.Get("/docs", s.handleIndex)
	s.router.Static("/", s.config.Root)
}

func (s *DocServer) handleHealth(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(domain.HealthResponse{
		Status:    "healthy",
		Message:   HealthMessage,
		Timestamp: domain.FormatTimestamp(s.now()),
	})
}

func (s *DocServer) handleIndex(ctx *fiber.Ctx) error {
	return ctx.SendFile(filepath.Join(s.config.Root, indexFile))
}

func (s *DocServer) requestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()
	s.logger.Debug("request served",
		slog.String("method", ctx.Method()),
		slog.String("path", ctx.Path()),
		slog.Int("status", ctx.Response().StatusCode()),
		slog.Duration("duration", time.Since(start)),
	)
	return err
}

// Router exposes the underlying fiber app.
func (s *DocServer) Router() *fiber.App {
	return s.router
}

// Run binds the configured address and serves until Shutdown. A bind
// failure is returned immediately.
func (s *DocServer) Run() error {
	if !hasIndex(s.config.Root) {
		return fmt.Errorf("%w: %s", ErrMissingIndex, s.config.Root)
	}

	base := baseURL(s.config.Addr)
	s.logger.Info("documentation server running", slog.String("url", base))
	s.logger.Info("view documentation", slog.String("url", base+"/docs"))
	s.logger.Debug("serving documents", slog.String("root", s.config.Root))
	return s.router.Listen(s.config.Addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *DocServer) Shutdown() error {
	return s.router.Shutdown()
}

func baseURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

// resolveRoot picks the directory holding index.html. An absolute root, or a
// relative one found from the working directory, is used as is; otherwise the
// root is tried relative to exeDir. When neither has an index the root is
// returned unchanged and Run reports it.
func resolveRoot(root, exeDir string) string {
	if filepath.IsAbs(root) || hasIndex(root) || exeDir == "" {
		return root
	}
	if candidate := filepath.Join(exeDir, root); hasIndex(candidate) {
		return candidate
	}
	return root
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Dir(exe)
}

func hasIndex(root string) bool {
	info, err := os.Stat(filepath.Join(root, indexFile))
	return err == nil && !info.IsDir()
}
