package inbound

import (
	"context"

	"github.com/Omar8345/readright-backend/domain"
)

type ProcessArticleParams struct {
	Text string
	URL  string
}

type ArticlePipelinePort interface {
	Process(ctx context.Context, params ProcessArticleParams) (*domain.ArticleRecord, error)
	Lookup(ctx context.Context, id string) (*domain.ArticleRecord, error)
}
