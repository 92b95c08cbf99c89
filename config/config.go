package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Gemini   Gemini
	Auth     Auth
	History  History
}

type Server struct {
	Port           string
	FrontendOrigin string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Gemini struct {
	ApiKey          string
	Model           string
	Temperature     float64
	MaxOutputTokens int
	TimeoutSeconds  int
}

type Auth struct {
	SessionSecret      string
	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectURL   string
}

type History struct {
	FilePath string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "5001")
	viper.SetDefault("FRONTEND_ORIGIN", "http://localhost:5173")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash-latest")
	viper.SetDefault("GEMINI_TEMPERATURE", 0.7)
	viper.SetDefault("GEMINI_MAX_OUTPUT_TOKENS", 8192)
	viper.SetDefault("GEMINI_TIMEOUT_SECONDS", 110)
	viper.SetDefault("HISTORY_FILE", "seen_questions.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.FrontendOrigin = viper.GetString("FRONTEND_ORIGIN")

	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Gemini.Temperature = viper.GetFloat64("GEMINI_TEMPERATURE")
	config.Gemini.MaxOutputTokens = viper.GetInt("GEMINI_MAX_OUTPUT_TOKENS")
	config.Gemini.TimeoutSeconds = viper.GetInt("GEMINI_TIMEOUT_SECONDS")

	config.Auth.SessionSecret = viper.GetString("SESSION_SECRET")
	config.Auth.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	config.Auth.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	config.Auth.OAuthRedirectURL = viper.GetString("OAUTH_REDIRECT_URL")

	config.History.FilePath = viper.GetString("HISTORY_FILE")

	log.Info().Str("port", config.Server.Port).Str("model", config.Gemini.Model).Msg("Config loaded")
	return &config, nil
}
