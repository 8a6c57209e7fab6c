package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIBaseURL is where the research backend listens during local development
	DefaultAPIBaseURL = "http://127.0.0.1:5000"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Backend services
	AIBaseURL        string
	NewsBaseURL      string
	AIRequestTimeout time.Duration
	// Page transitions
	PageExitDuration  time.Duration
	PageEnterDuration time.Duration
	AnalysisDelay     time.Duration
	VisitorTTL        time.Duration
	MaxVisitorTabs    int
	// News cache (Redis)
	NewsCacheRedisURL string
	NewsCacheTTL      time.Duration
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged instead of sent
	ContactInbox  string
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Logging
	LogLevel  string
	LogFormat string
	LogFile   string
	// Other
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	aiBaseURL := strings.TrimRight(getEnv("AI_API_BASE_URL", DefaultAPIBaseURL), "/")

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		AppURL:             strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		AIBaseURL:          aiBaseURL,
		NewsBaseURL:        strings.TrimRight(getEnv("NEWS_API_BASE_URL", aiBaseURL), "/"),
		AIRequestTimeout:   getEnvDuration("AI_REQUEST_TIMEOUT", 60*time.Second),
		PageExitDuration:   getEnvMillis("PAGE_EXIT_MS", 150),
		PageEnterDuration:  getEnvMillis("PAGE_ENTER_MS", 150),
		AnalysisDelay:      getEnvMillis("ANALYSIS_DELAY_MS", 3000),
		VisitorTTL:         getEnvDuration("VISITOR_TTL", 30*time.Minute),
		MaxVisitorTabs:     getEnvInt("MAX_VISITOR_TABS", 10000),
		NewsCacheRedisURL:  getEnv("NEWS_CACHE_REDIS_URL", ""),
		NewsCacheTTL:       getEnvDuration("NEWS_CACHE_TTL", 15*time.Minute),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		EmailFrom:          getEnv("EMAIL_FROM", "noreply@legalai.com"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "LegalAI"),
		EmailTestMode:      getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		ContactInbox:       getEnv("CONTACT_INBOX", "support@legalai.com"),
		TurnstileSiteKey:   getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		LogFile:            getEnv("LOG_FILE", ""),
		AllowedOrigins:     strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration parses Go duration strings such as "45s" or "2m"
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

// getEnvInt reads a positive integer
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid integer for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// getEnvMillis reads a non-negative integer number of milliseconds
func getEnvMillis(key string, defaultMillis int) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return time.Duration(defaultMillis) * time.Millisecond
	}
	ms, err := strconv.Atoi(value)
	if err != nil || ms < 0 {
		log.Printf("[WARNING] Invalid milliseconds for %s: %q, using %d", key, value, defaultMillis)
		return time.Duration(defaultMillis) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
