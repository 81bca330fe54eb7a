package config

import (
	"os"
	"strings"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	JwksUrl        string
}

// GetServerConfig reads the HTTP-surface settings. All of them are optional:
// PORT defaults to 8080, an empty ALLOWED_ORIGINS disables cross-origin
// requests and an empty AUTH_JWKS_URL disables bearer-token auth.
func GetServerConfig() (*ServerConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	var origins []string
	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}

	return &ServerConfig{
		Port:           port,
		AllowedOrigins: origins,
		JwksUrl:        os.Getenv("AUTH_JWKS_URL"),
	}, nil
}
