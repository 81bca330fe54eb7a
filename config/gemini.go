package config

import (
	"fmt"
	"os"
)

const defaultGeminiModel = "gemini-2.5-flash"

type GeminiConfig struct {
	ApiKey string
	Model  string
}

func GetGeminiConfig() (*GeminiConfig, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiConfig{
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
