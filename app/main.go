package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/adiwangsa/forum-api/domain"
	mysqlRepo "github.com/adiwangsa/forum-api/internal/repository/mysql"
	redisRepo "github.com/adiwangsa/forum-api/internal/repository/redis"
	"github.com/adiwangsa/forum-api/internal/rest"
	"github.com/adiwangsa/forum-api/internal/rest/middleware"
	"github.com/adiwangsa/forum-api/internal/usecase/comment"
	"github.com/adiwangsa/forum-api/internal/usecase/reply"
	"github.com/adiwangsa/forum-api/internal/usecase/thread"
	"github.com/adiwangsa/forum-api/internal/usecase/user"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2

	defaultAccessTokenTTLMin   = 30
	defaultRefreshTokenTTLHour = 24 * 7
)

// config collects everything read from the environment. Validation runs
// before any connection is opened so a bad deploy fails immediately.
type config struct {
	DatabaseHost string `validate:"required"`
	DatabasePort string `validate:"required,numeric"`
	DatabaseUser string `validate:"required"`
	DatabasePass string
	DatabaseName string `validate:"required"`

	CacheHost string `validate:"required"`
	CachePort string `validate:"required,numeric"`
	CachePass string
	CacheDB   int

	JWTSecret string `validate:"required,min=16"`

	Address         string
	ContextTimeout  time.Duration
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func loadConfig() (config, error) {
	cacheDB, err := strconv.Atoi(os.Getenv("CACHE_DB"))
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}

	timeout, err := strconv.Atoi(os.Getenv("CONTEXT_TIMEOUT"))
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}

	accessTTL, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_TTL_MINUTES"))
	if err != nil {
		log.Println("failed to parse access token TTL, using default")
		accessTTL = defaultAccessTokenTTLMin
	}

	refreshTTL, err := strconv.Atoi(os.Getenv("REFRESH_TOKEN_TTL_HOURS"))
	if err != nil {
		log.Println("failed to parse refresh token TTL, using default")
		refreshTTL = defaultRefreshTokenTTLHour
	}

	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}

	cfg := config{
		DatabaseHost:    os.Getenv("DATABASE_HOST"),
		DatabasePort:    os.Getenv("DATABASE_PORT"),
		DatabaseUser:    os.Getenv("DATABASE_USER"),
		DatabasePass:    os.Getenv("DATABASE_PASS"),
		DatabaseName:    os.Getenv("DATABASE_NAME"),
		CacheHost:       os.Getenv("CACHE_HOST"),
		CachePort:       os.Getenv("CACHE_PORT"),
		CachePass:       os.Getenv("CACHE_PASS"),
		CacheDB:         cacheDB,
		JWTSecret:       os.Getenv("JWT_SECRET"),
		Address:         address,
		ContextTimeout:  time.Duration(timeout) * time.Second,
		AccessTokenTTL:  time.Duration(accessTTL) * time.Minute,
		RefreshTokenTTL: time.Duration(refreshTTL) * time.Hour,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	//prepare database
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s",
		cfg.DatabaseUser, cfg.DatabasePass, cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Asia/Jakarta")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var db *gorm.DB

	for i := 0; i < dbMaxRetry; i++ {
		// TranslateError maps driver errors to gorm sentinels, the
		// repositories rely on ErrDuplicatedKey and ErrForeignKeyViolated
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare the token store
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheHost + ":" + cfg.CachePort,
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			log.Fatal("got error when closing the token store connection", err)
		}
	}()

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to token store", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))
	route.Use(middleware.Metrics())
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Prepare Repository
	idGen := domain.IDGenerator(func() string { return uuid.NewString() })
	threadRepo := mysqlRepo.NewThreadRepository(db, idGen)
	commentRepo := mysqlRepo.NewCommentRepository(db, idGen)
	replyRepo := mysqlRepo.NewReplyRepository(db, idGen)
	userRepo := mysqlRepo.NewUserRepository(db, idGen)
	authRepo := redisRepo.NewAuthenticationRepository(client, cfg.RefreshTokenTTL)

	// Build service Layer
	jwtSecret := []byte(cfg.JWTSecret)
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo)
	commentSvc := comment.NewService(commentRepo, threadRepo)
	replySvc := reply.NewService(replyRepo, commentRepo, threadRepo)
	userSvc := user.NewService(userRepo, authRepo, jwtSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	threadHandler := rest.NewThreadHandler(threadSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	replyHandler := rest.NewReplyHandler(replySvc)
	userHandler := rest.NewUserHandler(userSvc)

	authMiddleware := middleware.AuthMiddleware(cfg.JWTSecret)

	// Register routes
	route.POST("/users", userHandler.Register)
	route.POST("/authentications", userHandler.Login)
	route.PUT("/authentications", userHandler.Refresh)
	route.DELETE("/authentications", userHandler.Logout)

	route.GET("/threads/:threadId", threadHandler.GetByID)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/threads", threadHandler.Store)
		authorized.POST("/threads/:threadId/comments", commentHandler.Store)
		authorized.DELETE("/threads/:threadId/comments/:commentId", commentHandler.Delete)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", commentHandler.ToggleLike)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", replyHandler.Store)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", replyHandler.Delete)
	}

	// Start Server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    cfg.Address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
