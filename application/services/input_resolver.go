package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Omar8345/readright-backend/domain"
)

// ResolveSource classifies a request as text-mode or URL-mode. Exactly one
// of text and rawURL must be non-empty and a URL must be absolute http(s).
// No side effects; the pipeline calls this before touching any external
// service.
func ResolveSource(text string, rawURL string) (*domain.ArticleSource, error) {
	text = strings.TrimSpace(text)
	rawURL = strings.TrimSpace(rawURL)

	if text == "" && rawURL == "" {
		return nil, domain.NewStageError(domain.ValidationError, "either text or url must be provided", nil)
	}
	if text != "" && rawURL != "" {
		return nil, domain.NewStageError(domain.ValidationError, "text and url are mutually exclusive", nil)
	}

	if text != "" {
		return &domain.ArticleSource{
			Kind: domain.RawTextSource,
			Text: text,
		}, nil
	}

	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return nil, domain.NewStageError(domain.ValidationError, "url is malformed", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, domain.NewStageError(domain.ValidationError,
			fmt.Sprintf("url must be absolute http or https, got %q", rawURL), nil)
	}

	return &domain.ArticleSource{
		Kind: domain.URLSource,
		URL:  rawURL,
	}, nil
}
