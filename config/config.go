package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Venues snapshot config
const VENUES_SNAPSHOT_REFRESHER_SCHEDULE_MINUTES = 30
const VENUES_SNAPSHOT_PAGE_SIZE = 100
const VENUES_SNAPSHOT_MAX_PAGES = 50
const VENUE_DETAIL_CACHE_TTL_MINUTES = 10

// Listing config
const VENUES_PAGE_SIZE = 9
const PAGINATION_WINDOW = 5
const VIEW_TTL_MINUTES = 60

// Backend API
const BACKEND_ENDPOINT_BASE = "http://localhost:8000"
const BACKEND_TIMEOUT_SECONDS = 10
const CSRF_COOKIE_NAME = "csrftoken"
const CSRF_HEADER_NAME = "X-CSRFToken"
const CSRF_FORM_FIELD = "csrfmiddlewaretoken"
const CSRF_COOKIE_MAX_AGE = 365 * 24 * 60 * 60
const SESSION_COOKIE_NAME = "sessionid"

// Front routes
const DETAIL_ROUTE = "/lapangan"
const LOGIN_ROUTE = "/login"
const STATIC_BASE = "/static/"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUE_LIST_RESPONSE_RESOURCE = "venue_list_response.json"
const VENUE_DETAIL_RESPONSE_RESOURCE = "venue_detail_response.json"
const REVIEWS_RESPONSE_RESOURCE = "reviews_response.json"
const MITRA_LIST_RESPONSE_RESOURCE = "mitra_list_response.json"
const PROFILE_RESPONSE_RESOURCE = "profile_response.json"

// Config holds the runtime settings resolved from the environment.
type Config struct {
	Env                    string
	ServerAddr             string
	BackendBaseURL         string
	StaticBase             string
	RedisAddr              string
	RedisPassword          string
	RedisDB                int
	SnapshotRefreshMinutes int
	ViewTTL                time.Duration
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] No .env file loaded, using process environment")
	}

	return &Config{
		Env:                    getEnv("APP_ENV", "dev"),
		ServerAddr:             getEnv("SERVER_ADDR", ":8080"),
		BackendBaseURL:         getEnv("BACKEND_BASE_URL", BACKEND_ENDPOINT_BASE),
		StaticBase:             getEnv("STATIC_BASE", STATIC_BASE),
		RedisAddr:              getEnv("REDIS_ADDR", REDIS_DB_ADDRESS),
		RedisPassword:          getEnv("REDIS_PASSWORD", REDIS_DB_PASSWORD),
		RedisDB:                getEnvInt("REDIS_DB", REDIS_DB),
		SnapshotRefreshMinutes: getEnvInt("SNAPSHOT_REFRESH_MINUTES", VENUES_SNAPSHOT_REFRESHER_SCHEDULE_MINUTES),
		ViewTTL:                time.Duration(getEnvInt("VIEW_TTL_MINUTES", VIEW_TTL_MINUTES)) * time.Minute,
	}
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	// tests run from the package directory, so walk up to the module root
	for dir := wd; ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		if filepath.Dir(dir) == dir {
			return wd
		}
	}
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
