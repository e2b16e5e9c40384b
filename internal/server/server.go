package server

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/thereayou/contacts-api/internal/database"
	"github.com/thereayou/contacts-api/internal/email"
	"github.com/thereayou/contacts-api/internal/handlers"
	"github.com/thereayou/contacts-api/internal/middleware"
	"github.com/thereayou/contacts-api/internal/ratelimit"
	"github.com/thereayou/contacts-api/internal/storage"
	"github.com/thereayou/contacts-api/pkg/auth"
)

const (
	rateLimitTimes  = 3
	rateLimitWindow = 5 * time.Second
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	// Лимитер не работает без Redis, поэтому без него сервер не стартует
	redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	jwtMgr := auth.NewJWTManager(
		os.Getenv("JWT_SECRET"),
		15*time.Minute,
		7*24*time.Hour,
		24*time.Hour,
	)

	limiter := ratelimit.NewRedisLimiter(rdb, rateLimitTimes, rateLimitWindow)
	sender := email.NewSendGridSender()
	avatars := storage.NewS3AvatarStore()

	authH := handlers.NewAuthHandler(dbConn, jwtMgr, sender)
	contactH := handlers.NewContactHandler(dbConn)
	userH := handlers.NewUserHandler(dbConn, avatars)

	router := gin.Default()
	APIEndpoints(router, authH, contactH, userH,
		middleware.AuthMiddleware(jwtMgr, dbConn),
		middleware.RateLimitMiddleware(limiter),
	)

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
