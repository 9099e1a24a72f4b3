// Package web provides the HTTP API of the bot list.
// It uses the Gin framework for routing and middleware.
package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PancyStudios/PancyListGo/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Server represents the web server
type Server struct {
	engine *gin.Engine
}

var server *Server

// Init initializes the global web server
func Init() *Server {
	server = NewServer()
	return server
}

// Get returns the global web server
func Get() *Server {
	return server
}

// NewServer creates a new web server
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{engine: engine}

	// Apply middlewares
	s.engine.Use(requestLogMiddleware())
	s.engine.Use(rateLimitMiddleware())

	// Set up error handlers
	s.setupErrorHandlers()

	return s
}

// Engine returns the underlying Gin engine
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// requestLogMiddleware tags every request with an id and logs it
func requestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("requestId", requestID)
		c.Header("X-Request-Id", requestID)

		start := time.Now()
		c.Next()

		logger.Info(fmt.Sprintf("%s %s -> %d (%s) [%s]",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Millisecond),
			requestID,
		), "WebServer")
	}
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Window      time.Duration
	MaxRequests int
}

// rateLimitMiddleware implements a simple per-IP rate limiter
func rateLimitMiddleware() gin.HandlerFunc {
	type clientInfo struct {
		count   int
		resetAt time.Time
	}
	var mu sync.Mutex
	clients := make(map[string]*clientInfo)

	config := RateLimitConfig{
		Window:      60 * time.Second,
		MaxRequests: 100,
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		info, exists := clients[ip]
		if !exists || now.After(info.resetAt) {
			clients[ip] = &clientInfo{count: 1, resetAt: now.Add(config.Window)}
			mu.Unlock()
			c.Next()
			return
		}
		info.count++
		count := info.count
		mu.Unlock()

		if count > config.MaxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Demasiadas solicitudes, por favor intente de nuevo más tarde.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// setupErrorHandlers sets up error handling routes
func (s *Server) setupErrorHandlers() {
	// 404 handler
	s.engine.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "Not Found")
	})

	// 405 handler
	s.engine.HandleMethodNotAllowed = true
	s.engine.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, "Method not allowed")
	})
}

// Start starts the web server
func (s *Server) Start(port string) error {
	logger.Info(fmt.Sprintf("🚀 Server listening on http://localhost:%s", port), "WebServer")
	return s.engine.Run(":" + port)
}

// StartAsync starts the web server in a goroutine
func (s *Server) StartAsync(port string) {
	go func() {
		if err := s.Start(port); err != nil {
			logger.Error(fmt.Sprintf("Error starting web server: %v", err), "WebServer")
		}
	}()
}

// Group creates a new router group
func (s *Server) Group(path string, handlers ...gin.HandlerFunc) *gin.RouterGroup {
	return s.engine.Group(path, handlers...)
}
