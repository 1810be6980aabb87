package mockapi

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dpbr/dpbr-client/internal/client/client"
	"github.com/dpbr/dpbr-client/internal/client/models"
	"github.com/dpbr/dpbr-client/internal/common"
	"github.com/dpbr/dpbr-client/internal/logging"
	"github.com/gin-gonic/gin"
)

const (
	DefaultPrefix   = "/api/v1"
	DefaultTokenTTL = time.Hour
)

type Config struct {
	Prefix   string
	Secret   []byte
	TokenTTL time.Duration
}

// Server holds the in-memory state behind the router.
type Server struct {
	cfg Config
	log logging.Logger
	now func() time.Time

	mu        sync.Mutex
	users     map[string]client.UserDTO // by student id
	pending   map[string]string         // register token -> kakao code
	comments  []client.CommentDTO       // newest first
	nextUser  int64
	nextTalk  int64
	loggedOut map[string]struct{}
}

func NewServer(cfg Config, log logging.Logger) (*Server, error) {
	if log == nil {
		log = logging.Discard()
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if len(cfg.Secret) == 0 {
		secret, err := common.RandomBytes(32)
		if err != nil {
			return nil, fmt.Errorf("generate signing secret: %w", err)
		}
		cfg.Secret = secret
	}

	s := &Server{
		cfg:       cfg,
		log:       log.With("component", "mockapi"),
		now:       time.Now,
		users:     make(map[string]client.UserDTO),
		pending:   make(map[string]string),
		loggedOut: make(map[string]struct{}),
		nextUser:  1,
	}
	s.seedComments()
	return s, nil
}

// Handler builds the gin engine.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(s.recovery(), s.requestLog())

	api := r.Group("/" + strings.Trim(s.cfg.Prefix, "/"))
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := api.Group("/users")
	{
		users.POST("/login", s.login)
		users.POST("/auth/kakao/login", s.kakaoLogin)
		users.POST("/auth/kakao/register", s.kakaoRegister)
		users.POST("/logout", s.requireAuth(), s.logout)
		users.GET("/me", s.requireAuth(), s.me)
	}

	api.GET("/characters", s.characters)
	api.GET("/characters/:id", s.character)
	api.GET("/characters/:id/settlements", s.characterSettlements)
	api.GET("/settlements/:id", s.settlement)

	comments := api.Group("/comments")
	comments.Use(s.optionalAuth())
	{
		comments.GET("", s.listComments)
		comments.POST("", s.createComment)
		comments.DELETE("/:id", s.requireAuth(), s.deleteComment)
	}

	api.GET("/system/notices", s.notices)

	r.NoRoute(func(c *gin.Context) {
		detail(c, http.StatusNotFound, "Not Found")
	})
	return r
}

func (s *Server) seedComments() {
	for _, pc := range models.PlaceholderComments() {
		id, ok := models.PlaceholderNumber(pc.ID)
		if !ok {
			continue
		}
		createdAt := pc.CreatedAt
		if t, err := time.Parse(displayLayout, pc.CreatedAt); err == nil {
			createdAt = t.Format(naiveISO)
		}
		s.comments = append(s.comments, client.CommentDTO{
			ID:        id,
			UserID:    pc.UserID,
			Author:    pc.Author,
			Content:   pc.Content,
			CreatedAt: createdAt,
		})
		if id >= s.nextTalk {
			s.nextTalk = id + 1
		}
	}
}

const (
	displayLayout = "06. 01. 02. 15:04"
	naiveISO      = "2006-01-02T15:04:05"
)

func detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				s.log.Error(c.Request.Context(), "panic recovered", "err", err, "path", c.Request.URL.Path)
				detail(c, http.StatusInternalServerError, "Internal Server Error")
			}
		}()
		c.Next()
	}
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		)
	}
}
