package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string `mapstructure:"port"`
	Provider         string `mapstructure:"provider"`
	AIEndpoint       string `mapstructure:"ai_endpoint"`
	Model            string `mapstructure:"model"`
	GroqAPIKey       string `mapstructure:"GROQ_API_KEY"`
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	UploadDir        string `mapstructure:"upload_dir"`
	StaticDir        string `mapstructure:"static_dir"`
	ImageServiceBase string `mapstructure:"image_service_base"`
	LogFile          string `mapstructure:"log_file"`
	AskTimeoutSec    int    `mapstructure:"ask_timeout_sec"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set up Viper to read from config file
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set up Viper to read from environment variables
	v.AutomaticEnv()

	v.SetDefault("port", "8000")
	v.SetDefault("provider", "groq")
	v.SetDefault("ai_endpoint", "https://api.groq.com/openai/v1")
	v.SetDefault("model", "llama-3.3-70b-versatile")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("static_dir", "../Frontend")
	v.SetDefault("image_service_base", "https://image.pollinations.ai")
	v.SetDefault("log_file", "logs/server.log")
	v.SetDefault("ask_timeout_sec", 60)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Bind environment variables
	v.BindEnv("GROQ_API_KEY")
	v.BindEnv("GEMINI_API_KEY")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
