package outbound

import (
	"context"

	"github.com/Omar8345/readright-backend/domain"
)

// ArticleExtractorPort turns a URL into clean article text via the external
// extraction service. A single attempt per call; retries are the caller's
// concern.
type ArticleExtractorPort interface {
	Extract(ctx context.Context, url string) (*domain.Article, error)
}
