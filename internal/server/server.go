package server

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"backend/internal/config"
	"backend/internal/handler"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/token"
	"backend/internal/validation"
)

type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *zap.Logger
}

// NewServer wires repositories, services and handlers into a gin engine. The
// db handle is only used when the postgres backend is configured; the memory
// backend ignores it.
func NewServer(cfg *config.Config, db *sqlx.DB, logger *zap.Logger) *Server {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterStrongPassword(v, cfg.Password); err != nil {
			logger.Fatal("Failed to register password validator", zap.Error(err))
		}
	}

	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery(logger))

	s := &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
	}

	s.setupRoutes(db)

	return s
}

func (s *Server) setupRoutes(db *sqlx.DB) {
	var userRepo repository.UserRepository
	var todoRepo repository.TodoRepository
	if s.cfg.Storage.Backend == config.StoragePostgres {
		userRepo = repository.NewUserRepository(db, s.logger)
		todoRepo = repository.NewTodoRepository(db, s.logger)
	} else {
		userRepo = repository.NewMemoryUserRepository()
		todoRepo = repository.NewMemoryTodoRepository()
	}

	tokenService := token.NewService([]byte(s.cfg.JWT.Secret), s.cfg.TokenTTL(), s.logger)
	authService := service.NewAuthService(userRepo, tokenService, s.logger)
	todoService := service.NewTodoService(todoRepo, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.cfg.Password, s.logger)
	todoHandler := handler.NewTodoHandler(todoService, s.logger)

	// Token extraction runs for every request but never rejects one;
	// protected groups enforce the identity requirement themselves.
	s.router.Use(middleware.Authenticate(tokenService, s.logger))

	authGroup := s.router.Group("/auth")
	authGroup.POST("/signup", authHandler.SignUp)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/health", authHandler.Health)

	todoGroup := s.router.Group("/todo")
	todoGroup.Use(middleware.RequireAuth())
	{
		todoGroup.POST("", todoHandler.Create)
		todoGroup.GET("", todoHandler.List)
		todoGroup.GET("/:id", todoHandler.Get)
		todoGroup.PUT("/:id", todoHandler.Update)
		todoGroup.DELETE("/:id", todoHandler.Delete)
	}
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
