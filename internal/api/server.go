// Package api serves the tutor over HTTP with gin.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/abhisek/brainbytes/internal/store"
	"github.com/abhisek/brainbytes/internal/tutor"
)

// DefaultRequestTimeout bounds the tutor call of one POST /api/messages.
const DefaultRequestTimeout = 15 * time.Second

// TimeoutMessage replaces the answer when the tutor misses the deadline.
const TimeoutMessage = "I'm sorry, but I couldn't process your request in time. Please try again with a simpler question."

// Answerer answers one question. *tutor.Tutor implements it.
type Answerer interface {
	Handle(ctx context.Context, question, userID string) tutor.Result
}

type Options struct {
	Tutor    Answerer
	Messages store.MessageRepo
	Users    store.UserRepo

	// RequestTimeout defaults to DefaultRequestTimeout.
	RequestTimeout time.Duration

	// RateLimit is requests per second across the process; zero disables
	// limiting.
	RateLimit float64
	RateBurst int

	Logger log.FieldLogger
}

// Handler holds the dependencies of every route.
type Handler struct {
	tutor    Answerer
	messages store.MessageRepo
	users    store.UserRepo
	timeout  time.Duration
	log      log.FieldLogger
}

// NewRouter builds the gin engine with all routes and middleware.
func NewRouter(opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateBurst)
	}

	h := &Handler{
		tutor:    opts.Tutor,
		messages: opts.Messages,
		users:    opts.Users,
		timeout:  timeout,
		log:      logger,
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), cors(), rateLimit(limiter))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the BrainBytes API"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v := router.Group("/api")
	{
		v.GET("/messages", h.ListMessagesHandler)
		v.POST("/messages", h.CreateMessageHandler)
		v.GET("/stats", h.StatsHandler)

		v.GET("/users", h.ListUsersHandler)
		v.POST("/users", h.CreateUserHandler)
		v.GET("/users/:id", h.GetUserHandler)
		v.PUT("/users/:id", h.UpdateUserHandler)
	}

	return router
}

// Serve runs the API on addr until ctx is cancelled, then drains
// in-flight requests for up to five seconds.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
