package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB                *sql.DB
	JWTSecret         []byte
	DashboardCacheTTL time.Duration
}

var AppConfig *Config

// LoadEnv loads a .env file if one exists. Real environment variables win.
func LoadEnv() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the Postgres pool and populates AppConfig.
func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		host := getEnv("PGHOST", "localhost")
		port := getEnv("PGPORT", "5432")
		user := getEnv("PGUSER", "postgres")
		password := os.Getenv("PGPASSWORD")
		dbname := getEnv("PGDATABASE", "school_cashier")
		sslmode := getEnv("PGSSLMODE", "disable")

		dsn = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s", host, port, user, dbname, sslmode)
		if password != "" {
			dsn += " password=" + password
		}
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	cacheTTL := 5 * time.Minute
	if raw := os.Getenv("DASHBOARD_CACHE_TTL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cacheTTL = time.Duration(secs) * time.Second
		}
	}

	AppConfig = &Config{
		DB:                db,
		JWTSecret:         []byte(getEnv("JWT_SECRET", "school-cashier-dev-secret")),
		DashboardCacheTTL: cacheTTL,
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func JWTSecret() []byte {
	return AppConfig.JWTSecret
}

func DashboardCacheTTL() time.Duration {
	return AppConfig.DashboardCacheTTL
}
