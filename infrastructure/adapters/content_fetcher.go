package adapters

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// ContentFetcher executes a prepared HTTP request and returns the response
// body, treating any non-2xx status as an error. All outbound vendor calls
// go through it so timeout policy lives in one place.
type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

type contentFetcher struct {
	client *http.Client
}

func NewContentFetcher(timeout time.Duration) ContentFetcher {
	return &contentFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		log.Error().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("Failed to send the HTTP request")
		return nil, err
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			log.Error().Err(err).Str("url", req.URL.String()).Msg("Failed to close the response body")
		}
	}(res.Body)

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		log.Error().
			Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("Failed to read the response body")
		return nil, err
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		log.Error().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status", res.StatusCode).
			Str("message", string(payload)).
			Msg("HTTP request returned non-success status code")
		return nil, fmt.Errorf("HTTP request returned status code %d", res.StatusCode)
	}

	return payload, nil
}
