package outbound

import (
	"context"

	"github.com/Omar8345/readright-backend/domain"
)

// ArticleRewriterPort is the language-model capability: each method is one
// prompt round-trip, no caching across calls.
type ArticleRewriterPort interface {
	Rewrite(ctx context.Context, text string) (*domain.SimplifiedArticle, error)
	Summarize(ctx context.Context, text string) (*domain.Summary, error)
	Title(ctx context.Context, text string) (string, error)
}
