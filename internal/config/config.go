package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	// Client side
	APIURL   string
	APIKey   string // optional "id:hexsecret" pair for signed requests
	DataDir  string
	StartDay string // "sun" or "wed", selects the four-day planning window

	// Server side
	DBPath     string
	ListenAddr string

	// Telegram Config (optional for CLI, required for the bot)
	TelegramBotToken    string
	TelegramAllowUserID int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	apiURL := os.Getenv("PLANNER_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:5050"
	}

	apiKey := os.Getenv("PLANNER_API_KEY")
	if apiKey != "" && len(strings.Split(apiKey, ":")) != 2 {
		return nil, fmt.Errorf("PLANNER_API_KEY must be in id:secret format")
	}

	dataDir := os.Getenv("PLANNER_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	startDay := os.Getenv("PLANNER_START_DAY")
	if startDay == "" {
		startDay = "sun"
	}
	if startDay != "sun" && startDay != "wed" {
		return nil, fmt.Errorf("PLANNER_START_DAY must be \"sun\" or \"wed\", got %q", startDay)
	}

	dbPath := os.Getenv("PLANNER_DB_PATH")
	if dbPath == "" {
		dbPath = "planner.sqlite3"
	}

	addr := os.Getenv("PLANNER_ADDR")
	if addr == "" {
		addr = ":5050"
	}

	telegramBotToken := os.Getenv("TELEGRAM_BOT_TOKEN")
	telegramAllowUserIDStr := os.Getenv("TELEGRAM_ALLOW_USER_ID")
	var telegramAllowUserID int64
	if telegramAllowUserIDStr != "" {
		// A silently ignored typo here would leave the bot open to anyone.
		var err error
		telegramAllowUserID, err = strconv.ParseInt(telegramAllowUserIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_ALLOW_USER_ID must be a numeric user id, got %q", telegramAllowUserIDStr)
		}
	}

	return &Config{
		APIURL:              apiURL,
		APIKey:              apiKey,
		DataDir:             dataDir,
		StartDay:            startDay,
		DBPath:              dbPath,
		ListenAddr:          addr,
		TelegramBotToken:    telegramBotToken,
		TelegramAllowUserID: telegramAllowUserID,
	}, nil
}
