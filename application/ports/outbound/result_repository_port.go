package outbound

import (
	"context"

	"github.com/Omar8345/readright-backend/domain"
)

// ResultRepositoryPort persists processed articles. Get returns
// domain.ErrRecordNotFound when no row exists for the id.
type ResultRepositoryPort interface {
	Save(ctx context.Context, record domain.ArticleRecord) error
	Get(ctx context.Context, id string) (*domain.ArticleRecord, error)
}
