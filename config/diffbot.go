package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultDiffbotTimeoutSeconds = 25

type DiffbotConfig struct {
	ApiUrl  string
	Token   string
	Timeout time.Duration
}

func GetDiffbotConfig() (*DiffbotConfig, error) {
	apiUrl := os.Getenv("DIFFBOT_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("DIFFBOT_API_URL must be set")
	}
	token := os.Getenv("DIFFBOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("DIFFBOT_TOKEN must be set")
	}

	timeoutSeconds := defaultDiffbotTimeoutSeconds
	if raw := os.Getenv("DIFFBOT_TIMEOUT_SECONDS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse DIFFBOT_TIMEOUT_SECONDS")
		}
		timeoutSeconds = parsed
	}

	return &DiffbotConfig{
		ApiUrl:  apiUrl,
		Token:   token,
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}
