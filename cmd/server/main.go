package main

import (
	"context"
	"log"

	"nuture_backend/internal/api"
	"nuture_backend/internal/config"
	"nuture_backend/internal/identity"
	"nuture_backend/internal/middleware"
	"nuture_backend/internal/store"

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Soft-auth keeps credentials in clear text, as the legacy deployments
	// did. Refuse to start unless the operator has acknowledged it.
	if cfg.AuthMode == config.AuthSoft && !cfg.AuthPlaintext {
		logrus.Fatal("AUTH_MODE=soft stores credentials in plaintext; set AUTH_PLAINTEXT=true to acknowledge, or use AUTH_MODE=managed")
	}

	// Setup Data Source Name (DSN) and connect to the database.
	// TranslateError turns unique-index violations into gorm.ErrDuplicatedKey.
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// The single process-wide store handle, injected into every component
	st := store.NewGormStore(gdb)

	// Identity-resolution policy, selected once at startup
	var resolver identity.Resolver
	switch cfg.AuthMode {
	case config.AuthManaged:
		resolver = identity.NewManaged(identity.NewStubProvider(gdb), st)
	default:
		resolver = identity.NewSoftAuth(st)
	}
	logrus.WithFields(logrus.Fields{
		"auth_mode":     cfg.AuthMode,
		"coverage_mode": cfg.CoverageMode,
	}).Info("Policies selected")

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default()
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Open routes
	r.GET("/health", api.HealthHandler(st))
	r.POST("/signup", api.SignupHandler(resolver))
	r.POST("/login", api.LoginHandler(resolver, cfg.JWTSecret))

	// Account routes; Bearer-token protected when REQUIRE_AUTH is set
	account := r.Group("")
	if cfg.RequireAuth {
		account.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	}
	account.POST("/subscribe", api.SubscribeHandler(st, redisClient))
	account.GET("/subscription/:uid", api.GetSubscriptionHandler(st, redisClient, cfg.CoverageMode))
	account.POST("/claims", api.SubmitClaimHandler(st, redisClient, cfg.CoverageMode))
	account.GET("/claims/:uid", api.GetClaimsHandler(st, redisClient))
	account.POST("/vault", api.AddVaultRecordHandler(st, redisClient))
	account.GET("/vault/:uid", api.GetVaultHandler(st, redisClient))
	account.GET("/referrals/:uid", api.GetReferralsHandler(st, redisClient))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
