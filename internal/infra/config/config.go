package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"homework_notification_bot/internal/domain/homework"
	"homework_notification_bot/internal/infra/practicum"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// DefaultPollInterval is the pause between two polls of the statuses API.
// Intervals must be whole seconds: the scheduler has one-second resolution.
const DefaultPollInterval = 600 * time.Second

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string        `validate:"required"`
	TelegramToken  string        `validate:"required"`
	ChatID         int64         `validate:"required"`
	AdminChatID    int64         `validate:"required"` // Operator alerts; defaults to ChatID
	Endpoint       string        `validate:"required,url"`
	TelegramAPIURL string        `validate:"omitempty,url"` // Empty means the public Bot API
	PollInterval   time.Duration `validate:"min=1s,whole_seconds"`
	LogLevel       string
	Environment    string
	LogFile        string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("whole_seconds", func(fl validator.FieldLevel) bool {
		return time.Duration(fl.Field().Int())%time.Second == 0
	})
	return v
}

// Load reads configuration from environment variables and the given .env file (if present).
// Any problem is returned as a configuration error; the caller must not start polling.
func Load(envFile string) (*AppConfig, error) {
	// Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	if envFile == "" {
		_ = godotenv.Load()
	} else {
		_ = godotenv.Load(envFile)
	}

	cfg, err := fromEnv()
	if err != nil {
		return nil, homework.ConfigurationError(err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, homework.ConfigurationError(err)
	}
	return cfg, nil
}

func fromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	if cfg.PracticumToken == "" {
		return nil, fmt.Errorf("PRACTICUM_TOKEN is not set")
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}
	cfg.ChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.AdminChatID = cfg.ChatID
	if adminIDStr := os.Getenv("ADMIN_TELEGRAM_CHAT_ID"); adminIDStr != "" {
		cfg.AdminChatID, err = strconv.ParseInt(adminIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ADMIN_TELEGRAM_CHAT_ID: %w", err)
		}
	}

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = practicum.DefaultEndpoint
	}

	cfg.TelegramAPIURL = os.Getenv("TELEGRAM_API_URL")

	cfg.PollInterval = DefaultPollInterval
	if intervalStr := os.Getenv("POLL_INTERVAL"); intervalStr != "" {
		cfg.PollInterval, err = time.ParseDuration(intervalStr)
		if err != nil {
			return nil, fmt.Errorf("invalid POLL_INTERVAL: %w", err)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.LogFile = os.Getenv("LOG_FILE")

	return cfg, nil
}
