package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Planning policy defaults. Group size offsets are policy, not contract: the
// interpreter reads them from here rather than hard-coding them.
const DEFAULT_CITY = "New York City"
const DEFAULT_GROUP_SIZE = 12
const GROUP_SIZE_SPREAD = 4
const DEFAULT_BACKUP_TARGET = 1
const EVENT_START_HOUR = 22
const SLOT_DURATION_HOURS = 2

// Interpreter modes.
const INTERPRETER_MODE_HEURISTIC = "heuristic"
const INTERPRETER_MODE_LLM = "llm"
const INTERPRETER_MODE_STUB = "stub"

// Venue cache warmer config.
const VENUE_CACHE_WARMER_SCHEDULE_MINUTES = 30

// Resources file paths.
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_SEED_RESOURCE = "venues_seed.json"
const SAMPLE_TRIP_SKELETON_RESOURCE = "sample_trip_skeleton.json"

// Config holds everything read from the environment at boot.
type Config struct {
	Env        string
	ServerAddr string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PostgresDSN string

	InterpreterMode string
	LLMEndpoint     string
	LLMAPIKey       string
	LLMModel        string

	DefaultCity     string
	GroupSizeSpread int
	PlotScores      bool
}

// Load reads .env if present and builds the Config with defaults for
// anything unset.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[Config] no .env file found, using environment")
	}

	return &Config{
		Env:        getEnv("APP_ENV", "dev"),
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		PostgresDSN: getEnv("POSTGRES_DSN",
			"host=localhost port=5432 user=postgres password=postgres dbname=partypilot sslmode=disable"),

		InterpreterMode: getEnv("INTERPRETER_MODE", INTERPRETER_MODE_HEURISTIC),
		LLMEndpoint:     getEnv("LLM_ENDPOINT", "https://api.openai.com/v1"),
		LLMAPIKey:       getEnv("LLM_API_KEY", ""),
		LLMModel:        getEnv("LLM_MODEL", "gpt-4o-mini"),

		DefaultCity:     getEnv("DEFAULT_CITY", DEFAULT_CITY),
		GroupSizeSpread: getEnvInt("GROUP_SIZE_SPREAD", GROUP_SIZE_SPREAD),
		PlotScores:      getEnvBool("PLOT_SCORES", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}
	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
