package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion

	"github.com/joho/godotenv" // For loading .env files
)

// AuthMode selects the identity-resolution policy at startup
type AuthMode string

// Supported identity-resolution policies
const (
	AuthSoft    AuthMode = "soft"    // Resolve against our own store, plaintext credential compare
	AuthManaged AuthMode = "managed" // Delegate credential handling to the identity provider
)

// CoverageMode selects the coverage-accounting strictness at startup
type CoverageMode string

// Supported coverage-accounting levels
const (
	CoverageFull    CoverageMode = "full"    // Aggregate approved claims into coverageUsed
	CoverageRelaxed CoverageMode = "relaxed" // Report zero usage; bump streak on claim submission
)

// Config holds the application configuration
type Config struct {
	AppPort       string       // Application port
	DBUser        string       // Database user
	DBPassword    string       // Database password
	DBHost        string       // Database host
	DBPort        string       // Database port
	DBName        string       // Database name
	JWTSecret     string       // JWT secret key
	RedisAddr     string       // Redis server address
	RedisPass     string       // Redis password
	RedisDB       int          // Redis database number
	IsProd        bool         // Is production environment
	AuthMode      AuthMode     // Identity-resolution policy
	CoverageMode  CoverageMode // Coverage-accounting strictness
	AuthPlaintext bool         // Operator acknowledgement of plaintext credentials in soft mode
	RequireAuth   bool         // Mount the Bearer-token middleware on mutating routes
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	authMode := AuthMode(os.Getenv("AUTH_MODE"))
	if authMode != AuthManaged {
		authMode = AuthSoft // Later deployment generations default to soft-auth
	}
	coverageMode := CoverageMode(os.Getenv("COVERAGE_MODE"))
	if coverageMode != CoverageRelaxed {
		coverageMode = CoverageFull
	}

	return &Config{
		AppPort:       os.Getenv("APP_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBName:        os.Getenv("DB_NAME"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPass:     os.Getenv("REDIS_PASS"),
		RedisDB:       redisDB,
		IsProd:        os.Getenv("IS_PROD") == "true",
		AuthMode:      authMode,
		CoverageMode:  coverageMode,
		AuthPlaintext: os.Getenv("AUTH_PLAINTEXT") == "true",
		RequireAuth:   os.Getenv("REQUIRE_AUTH") == "true",
	}
}
