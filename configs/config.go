package config

import "os"

type Config struct {
	Port                 string
	LinkedinClientID     string
	LinkedinClientSecret string
	LinkedinRedirectURI  string
	LinkedinAuthURL      string
	LinkedinTokenURL     string
	LinkedinUserInfoURL  string
	DatabaseURL          string
	UseLocalDB           bool
	RedisURI             string
	AllowedOrigins       string
	FrontendDashboardURL string
	TavilyAPIKey         string
	TavilyBaseURL        string
	PerplexityAPIKey     string
	PerplexityBaseURL    string
	PerplexityModel      string
}

func LoadConfig() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8000"),
		LinkedinClientID:     getEnv("LINKEDIN_CLIENT_ID", ""),
		LinkedinClientSecret: getEnv("LINKEDIN_CLIENT_SECRET", ""),
		LinkedinRedirectURI:  getEnv("LINKEDIN_REDIRECT_URI", "http://localhost:8000/api/v1/auth/linkedin/callback"),
		LinkedinAuthURL:      getEnv("LINKEDIN_AUTH_URL", ""),
		LinkedinTokenURL:     getEnv("LINKEDIN_TOKEN_URL", ""),
		LinkedinUserInfoURL:  getEnv("LINKEDIN_USERINFO_URL", "https://api.linkedin.com/v2/userinfo"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		UseLocalDB:           getEnv("USE_LOCAL_DB", "") == "true",
		RedisURI:             getEnv("REDIS_URI", ""),
		AllowedOrigins:       getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001"),
		FrontendDashboardURL: getEnv("FRONTEND_DASHBOARD_URL", "http://localhost:3000/dashboard"),
		TavilyAPIKey:         getEnv("TAVILY_API_KEY", ""),
		TavilyBaseURL:        getEnv("TAVILY_BASE_URL", "https://api.tavily.com"),
		PerplexityAPIKey:     getEnv("PERPLEXITY_API_KEY", ""),
		PerplexityBaseURL:    getEnv("PERPLEXITY_BASE_URL", "https://api.perplexity.ai"),
		PerplexityModel:      getEnv("PERPLEXITY_MODEL", "sonar"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
