package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port                string
	Env                 string
	CORSAllowOrigin     []string
	DatabaseURL         string
	CorpusPath          string
	ArtifactStoreType   string
	LocalArtifactDir    string
	AWSRegion           string
	S3Bucket            string
	S3Prefix            string
	TrainOnBoot         bool
	ModelReloadInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 env,
		CORSAllowOrigin:     splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:         dbURL,
		CorpusPath:          getEnv("CORPUS_PATH", "data/corpus.csv"),
		ArtifactStoreType:   normalizeStoreType(getEnv("ARTIFACT_STORE", "local")),
		LocalArtifactDir:    getEnv("LOCAL_ARTIFACT_DIR", "./data/artifacts"),
		AWSRegion:           getEnv("AWS_REGION", ""),
		S3Bucket:            getEnv("S3_BUCKET", ""),
		S3Prefix:            getEnv("S3_PREFIX", ""),
		TrainOnBoot:         getEnvBool("TRAIN_ON_BOOT", devLike(env)),
		ModelReloadInterval: getEnvDuration("MODEL_RELOAD_INTERVAL", 5*time.Minute),
	}
}

// IsDevLike reports whether this is a developer environment ("dev" or
// "local") where memory repos, boot-time training, and the reload route
// are acceptable.
func (c Config) IsDevLike() bool {
	return devLike(c.Env)
}

func devLike(env string) bool {
	return env == "dev" || env == "local"
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	raw := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch raw {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	default:
		return def
	}
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config env %s invalid duration: %v", key, err)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
