package config

import "github.com/Omar8345/readright-backend/domain"

// Config aggregates every external-service configuration. It is built once
// at process start and handed by reference to the adapters; nothing reads
// the environment after Load returns.
type Config struct {
	Diffbot    *DiffbotConfig
	Gemini     *GeminiConfig
	ElevenLabs *ElevenLabsConfig
	S3         *S3Config
	Dynamo     *DynamoConfig
	Server     *ServerConfig
}

func Load() (*Config, error) {
	diffbotConfig, err := GetDiffbotConfig()
	if err != nil {
		return nil, domain.NewStageError(domain.ConfigurationError, "diffbot config", err)
	}

	geminiConfig, err := GetGeminiConfig()
	if err != nil {
		return nil, domain.NewStageError(domain.ConfigurationError, "gemini config", err)
	}

	elevenLabsConfig, err := GetElevenLabsConfig()
	if err != nil {
		return nil, domain.NewStageError(domain.ConfigurationError, "eleven labs config", err)
	}

	s3Config, err := GetS3Config()
	if err != nil {
		return nil, domain.NewStageError(domain.ConfigurationError, "s3 config", err)
	}

	dynamoConfig, err := GetDynamoConfig()
	if err != nil {
		return nil, domain.NewStageError(domain.ConfigurationError, "dynamo config", err)
	}

	serverConfig, err := GetServerConfig()
	if err != nil {
		return nil, domain.NewStageError(domain.ConfigurationError, "server config", err)
	}

	return &Config{
		Diffbot:    diffbotConfig,
		Gemini:     geminiConfig,
		ElevenLabs: elevenLabsConfig,
		S3:         s3Config,
		Dynamo:     dynamoConfig,
		Server:     serverConfig,
	}, nil
}
