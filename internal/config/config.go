package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Category validation modes. Open mode accepts arbitrary category strings,
// strict mode rejects anything outside the known set.
const (
	CategoryModeOpen   = "open"
	CategoryModeStrict = "strict"
)

type AzureOpenAI struct {
	Endpoint       string
	APIKey         string
	DeploymentName string
	APIVersion     string
}

// Configured reports whether every value needed to call the generation
// service is present. An incomplete config just disables the AI helper, it is
// not an error.
func (a AzureOpenAI) Configured() bool {
	return a.Endpoint != "" && a.APIKey != "" && a.DeploymentName != ""
}

type Config struct {
	MongoURI      string
	DBName        string
	Port          string
	AdminUsername string
	AdminPassword string
	CategoryMode  string
	AzureOpenAI   AzureOpenAI
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}

	return Config{
		MongoURI:      getEnv("MONGODB_URI", ""),
		DBName:        getEnv("DB_NAME", "shazeda_candles"),
		Port:          getEnv("PORT", "8080"),
		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		CategoryMode:  getCategoryMode(),
		AzureOpenAI: AzureOpenAI{
			Endpoint:       getEnv("AZURE_OPENAI_ENDPOINT", ""),
			APIKey:         getEnv("AZURE_OPENAI_API_KEY", ""),
			DeploymentName: getEnv("AZURE_OPENAI_DEPLOYMENT_NAME", ""),
			APIVersion:     getEnv("AZURE_OPENAI_API_VERSION", "2024-02-15-preview"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getCategoryMode() string {
	mode := strings.ToLower(getEnv("CATEGORY_VALIDATION", CategoryModeOpen))
	if mode != CategoryModeStrict && mode != CategoryModeOpen {
		log.Printf("unknown CATEGORY_VALIDATION %q, using %q", mode, CategoryModeOpen)
		return CategoryModeOpen
	}
	return mode
}
