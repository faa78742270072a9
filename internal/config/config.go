package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LLM providers understood by llm.NewModel.
const (
	ProviderNone      = "none"
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderBedrock   = "bedrock"
)

// DefaultTLDs are checked when NAMESMITH_TLDS is unset.
var DefaultTLDs = []string{"com", "io", "co", "ai", "net", "app"}

// Config holds all configuration values.
type Config struct {
	// Remote name generation
	LLMProvider     string
	LLMModel        string
	OllamaHost      string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	AWSRegion       string
	LLMTimeout      time.Duration
	MinAIResults    int

	// Local engine
	VocabularyFile string

	// Domain availability
	TLDs                   []string
	AvailabilityTimeout    time.Duration
	AvailabilityConcurrent int

	// Generation history (SurrealDB)
	HistoryEnabled     bool
	SurrealDBURL       string
	SurrealDBNamespace string
	SurrealDBDatabase  string
	SurrealDBUser      string
	SurrealDBPass      string
	SurrealDBAuthLevel string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads an optional .env file from the working directory and then
// configuration from environment variables. Variables already set in the
// environment win over the file.
func Load() Config {
	_ = godotenv.Load()
	return fromEnv()
}

// LoadFile is like Load but reads the given env files instead of .env.
func LoadFile(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		return Config{}, err
	}
	return fromEnv(), nil
}

func fromEnv() Config {
	provider := strings.ToLower(getEnv("NAMESMITH_LLM_PROVIDER", ProviderNone))

	return Config{
		LLMProvider:     provider,
		LLMModel:        getEnv("NAMESMITH_LLM_MODEL", defaultModel(provider)),
		OllamaHost:      getEnv("OLLAMA_HOST", "http://localhost:11434"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		LLMTimeout:      getEnvDuration("NAMESMITH_LLM_TIMEOUT", 30*time.Second),
		MinAIResults:    getEnvInt("NAMESMITH_MIN_AI_RESULTS", 10),

		VocabularyFile: getEnv("NAMESMITH_VOCABULARY_FILE", ""),

		TLDs:                   getEnvList("NAMESMITH_TLDS", DefaultTLDs),
		AvailabilityTimeout:    getEnvDuration("NAMESMITH_AVAILABILITY_TIMEOUT", 3*time.Second),
		AvailabilityConcurrent: getEnvInt("NAMESMITH_AVAILABILITY_CONCURRENCY", 8),

		HistoryEnabled:     getEnvBool("NAMESMITH_HISTORY", false),
		SurrealDBURL:       getEnv("SURREALDB_URL", "ws://localhost:8000/rpc"),
		SurrealDBNamespace: getEnv("SURREALDB_NAMESPACE", "namesmith"),
		SurrealDBDatabase:  getEnv("SURREALDB_DATABASE", "names"),
		SurrealDBUser:      getEnv("SURREALDB_USER", "root"),
		SurrealDBPass:      getEnv("SURREALDB_PASS", "root"),
		SurrealDBAuthLevel: getEnv("SURREALDB_AUTH_LEVEL", "root"),

		LogFile:  getEnv("NAMESMITH_LOG_FILE", "/tmp/namesmith.log"),
		LogLevel: parseLogLevel(getEnv("NAMESMITH_LOG_LEVEL", "INFO")),
	}
}

// RemoteEnabled reports whether a remote name source is configured.
func (c Config) RemoteEnabled() bool {
	return c.LLMProvider != "" && c.LLMProvider != ProviderNone
}

func defaultModel(provider string) string {
	switch provider {
	case ProviderOllama:
		return "llama3.1"
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderAnthropic:
		return "claude-3-5-haiku-latest"
	case ProviderBedrock:
		return "anthropic.claude-3-haiku-20240307-v1:0"
	default:
		return ""
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultVal
	}
	return n
}

func getEnvBool(key string, defaultVal bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string, defaultVal []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), defaultVal...)
	}
	return out
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
